package nanobanana

// Provider represents a model provider/backend.
type Provider string

const (
	ProviderGeminiAPI Provider = "gemini"
)

// ProviderConfig configures a specific provider.
type ProviderConfig struct {
	// Provider type
	Provider Provider

	// APIKey for authentication
	APIKey string

	// BaseURL for custom endpoints (optional)
	BaseURL string
}

// ModelCapabilities describes what features a model supports.
type ModelCapabilities struct {
	SupportsTextToImage  bool `json:"text_to_image" yaml:"text_to_image"`
	SupportsImageEditing bool `json:"image_editing" yaml:"image_editing"`

	MaxInputImages  int `json:"max_input_images" yaml:"max_input_images"`
	MaxOutputImages int `json:"max_output_images" yaml:"max_output_images"`
}

// ImageConstraints lists the image configurations a model accepts. They are
// informational; requests are not checked against them.
type ImageConstraints struct {
	SupportedAspectRatios []AspectRatio `json:"aspect_ratios" yaml:"aspect_ratios"`
	SupportedSizes        []ImageSize   `json:"sizes" yaml:"sizes"`
}

// ModelInfo contains complete metadata for a model.
type ModelInfo struct {
	// Public model name (e.g., "nano-banana-pro")
	Name     string   `json:"name" yaml:"name"`
	Provider Provider `json:"provider" yaml:"provider"`

	// APIModelName is the value accepted by --model
	APIModelName Model `json:"api_model" yaml:"api_model"`

	Capabilities     ModelCapabilities `json:"capabilities" yaml:"capabilities"`
	ContextLength    int               `json:"context_length" yaml:"context_length"`
	ImageConstraints ImageConstraints  `json:"image_constraints" yaml:"image_constraints"`
}
