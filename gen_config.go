package nanobanana

import (
	"fmt"
	"time"
)

// Model is the API identifier of an image generation model.
type Model string

const (
	ModelNanoBananaPro Model = "gemini-3-pro-image-preview" // Gemini 3 Pro Image
	ModelNanoBanana    Model = "gemini-2.5-flash-image"     // Gemini 2.5 Flash Image

	ModelDefault Model = ModelNanoBananaPro
)

// ImageSize represents the output resolution for generated images.
type ImageSize string

const (
	ImageSize1K ImageSize = "1K"
	ImageSize2K ImageSize = "2K"
	ImageSize4K ImageSize = "4K"
)

// AspectRatio represents the aspect ratio for generated images.
type AspectRatio string

const (
	AspectRatio1x1  AspectRatio = "1:1"
	AspectRatio16x9 AspectRatio = "16:9"
	AspectRatio9x16 AspectRatio = "9:16"
	AspectRatio4x3  AspectRatio = "4:3"
	AspectRatio3x4  AspectRatio = "3:4"
	AspectRatio2x3  AspectRatio = "2:3"  // Photo portrait
	AspectRatio3x2  AspectRatio = "3:2"  // Photo landscape (35mm film ratio)
	AspectRatio4x5  AspectRatio = "4:5"  // Instagram portrait
	AspectRatio5x4  AspectRatio = "5:4"  // Large format photo
	AspectRatio21x9 AspectRatio = "21:9" // Ultrawide/cinematic
	AspectRatioAuto AspectRatio = ""
)

// DefaultTimeout bounds the single remote call.
const DefaultTimeout = 120 * time.Second

// GenerateConfig holds every option the generate command recognizes.
// Aspect ratio and size are passed through to the API as given.
type GenerateConfig struct {
	// Model to use for generation (empty means ModelDefault)
	Model Model

	// AspectRatio of the output image, empty lets the service decide
	AspectRatio AspectRatio

	// Size of the output image (1K, 2K, 4K), empty lets the service decide
	Size ImageSize

	// ImageOnly asks the service to omit text parts from its response
	ImageOnly bool

	// Output is the path for the first generated image. When empty a name
	// is derived from the prompt.
	Output string

	// Images are local reference image paths, sent in order after the prompt
	Images []string

	// Timeout bounds the remote call. Zero means DefaultTimeout.
	Timeout time.Duration
}

// DefaultConfig returns a GenerateConfig with the built-in defaults.
func DefaultConfig() GenerateConfig {
	return GenerateConfig{
		Model:       ModelDefault,
		AspectRatio: AspectRatioAuto,
		Timeout:     DefaultTimeout,
	}
}

// WithModel returns a copy of the config with the specified model.
func (c GenerateConfig) WithModel(model Model) GenerateConfig {
	c.Model = model
	return c
}

// Validate checks the structural constraints of the config. It does not
// check aspect ratio or size against the known sets.
func (c GenerateConfig) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout %v", ErrInvalidConfig, c.Timeout)
	}
	if len(c.Images) > MaxInputImages {
		return fmt.Errorf("%w: %d input images (max %d)", ErrInvalidConfig, len(c.Images), MaxInputImages)
	}
	for i, p := range c.Images {
		if p == "" {
			return fmt.Errorf("%w: image %d has an empty path", ErrInvalidConfig, i+1)
		}
	}
	return nil
}

func (c GenerateConfig) resolvedModel() Model {
	if c.Model == "" {
		return ModelDefault
	}
	return c.Model
}

func (c GenerateConfig) resolvedTimeout() time.Duration {
	if c.Timeout == 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

// String returns the string representation for API calls.
func (s ImageSize) String() string {
	return string(s)
}

// String returns the string representation for API calls.
func (a AspectRatio) String() string {
	return string(a)
}

// String returns the model identifier.
func (m Model) String() string {
	return string(m)
}
