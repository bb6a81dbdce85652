package nanobanana

import "fmt"

// InputImage is a reference image sent alongside the prompt.
type InputImage struct {
	// Data is the raw image bytes
	Data []byte

	// MIMEType of the image, derived from the file extension
	MIMEType string

	// Path the image was loaded from
	Path string
}

// GenerationRequest is the single outbound request of an invocation.
// It is built once by BuildRequest and not modified afterwards.
type GenerationRequest struct {
	Prompt string

	// Images follow the prompt in the order they were given
	Images []InputImage

	Model Model

	// AspectRatio and Size are empty when not supplied
	AspectRatio AspectRatio
	Size        ImageSize

	// IncludeText is false when only image parts are wanted
	IncludeText bool
}

// BuildRequest validates cfg and loads its reference images. Every input
// image error surfaces here, before any network activity.
func BuildRequest(prompt string, cfg GenerateConfig) (*GenerationRequest, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	images := make([]InputImage, 0, len(cfg.Images))
	for _, p := range cfg.Images {
		img, err := LoadInputImage(p)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}

	return &GenerationRequest{
		Prompt:      prompt,
		Images:      images,
		Model:       cfg.resolvedModel(),
		AspectRatio: cfg.AspectRatio,
		Size:        cfg.Size,
		IncludeText: !cfg.ImageOnly,
	}, nil
}

// ResponseModalities returns the modalities requested from the service.
func (r *GenerationRequest) ResponseModalities() []string {
	if r.IncludeText {
		return []string{"TEXT", "IMAGE"}
	}
	return []string{"IMAGE"}
}

func (r *GenerationRequest) String() string {
	return fmt.Sprintf("model=%s images=%d aspect=%q size=%q text=%t",
		r.Model, len(r.Images), r.AspectRatio, r.Size, r.IncludeText)
}
