package nanobanana

import "context"

// ImageGenerator performs the remote generation call.
// Implement this interface to add support for new providers.
//
// The first model returned by Models() is considered the default model.
type ImageGenerator interface {
	// Generate sends one request and returns the decoded response parts.
	Generate(ctx context.Context, req *GenerationRequest) (*Response, error)

	// Models returns the model definitions supported by this provider.
	Models() []ModelInfo

	// Close releases any resources held by the generator.
	Close() error
}

// GeneratorFactory builds an ImageGenerator once credentials are known.
type GeneratorFactory func(ctx context.Context, apiKey string) (ImageGenerator, error)

// CredentialProvider resolves the API key.
type CredentialProvider interface {
	APIKey() (string, error)
}
