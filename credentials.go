package nanobanana

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// APIKeyEnv is the variable holding the Gemini API key.
const APIKeyEnv = "GEMINI_API_KEY"

// EnvCredentials resolves the API key from the process environment, then
// from an env file, then from a fixed fallback value. Variables already set
// in the environment win over the file.
type EnvCredentials struct {
	// Name of the variable, APIKeyEnv when empty
	Name string

	// EnvFile is an optional KEY=VALUE file. A missing file is skipped.
	EnvFile string

	// Fallback is used when neither source has the key, e.g. a key read
	// from a config file
	Fallback string

	// Lookup reads the environment, os.LookupEnv when nil
	Lookup func(string) (string, bool)
}

// Ensure EnvCredentials implements CredentialProvider.
var _ CredentialProvider = EnvCredentials{}

// APIKey implements CredentialProvider.
func (c EnvCredentials) APIKey() (string, error) {
	name := c.Name
	if name == "" {
		name = APIKeyEnv
	}
	lookup := c.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if v, ok := lookup(name); ok && v != "" {
		return v, nil
	}

	if c.EnvFile != "" {
		vars, err := godotenv.Read(c.EnvFile)
		switch {
		case err == nil:
			if v := vars[name]; v != "" {
				return v, nil
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return "", fmt.Errorf("load %s: %w", c.EnvFile, err)
		}
	}

	if c.Fallback != "" {
		return c.Fallback, nil
	}
	return "", ErrMissingCredential
}

// StaticCredentials is a fixed API key.
type StaticCredentials string

// APIKey implements CredentialProvider.
func (s StaticCredentials) APIKey() (string, error) {
	if s == "" {
		return "", ErrMissingCredential
	}
	return string(s), nil
}
