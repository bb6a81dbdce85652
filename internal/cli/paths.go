package cli

import (
	"os"
	"path/filepath"
)

const (
	// DefaultAppName names the per-user configuration directory
	DefaultAppName = "nanobanana"
	// DefaultConfigFile is the default configuration filename
	DefaultConfigFile = "config.yaml"
	// EnvFileName is the credentials file looked up at the install root
	EnvFileName = ".env"
)

// Paths locates the files the CLI reads.
type Paths struct {
	// AppName is the application name
	AppName string

	// HomeDir is the user's home directory
	HomeDir string

	// Executable is the resolved path of the running binary
	Executable string
}

// NewPaths creates a Paths for the running executable.
func NewPaths(appName string) (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	exe, err := os.Executable()
	if err != nil {
		return nil, err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return &Paths{
		AppName:    appName,
		HomeDir:    home,
		Executable: exe,
	}, nil
}

// ConfigDir returns ~/.config/<app>.
func (p *Paths) ConfigDir() string {
	return filepath.Join(p.HomeDir, ".config", p.AppName)
}

// ConfigFile returns ~/.config/<app>/config.yaml.
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.ConfigDir(), DefaultConfigFile)
}

// InstallRoot is the parent of the directory holding the executable, so a
// binary at <root>/bin/nanobanana resolves to <root>.
func (p *Paths) InstallRoot() string {
	return filepath.Dir(filepath.Dir(p.Executable))
}

// EnvFile returns the .env path at the install root.
func (p *Paths) EnvFile() string {
	return filepath.Join(p.InstallRoot(), EnvFileName)
}
