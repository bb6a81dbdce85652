package gemini

import "github.com/mhpenta/nanobanana"

// Model name constants - the actual API model names.
const (
	// APIModelNanoBananaPro is the actual API name for Gemini 3 Pro Image
	APIModelNanoBananaPro = string(nanobanana.ModelNanoBananaPro)

	// APIModelNanoBanana is the actual API name for Gemini 2.5 Flash Image
	APIModelNanoBanana = string(nanobanana.ModelNanoBanana)
)

var allAspectRatios = []nanobanana.AspectRatio{
	nanobanana.AspectRatio1x1,
	nanobanana.AspectRatio2x3,
	nanobanana.AspectRatio3x2,
	nanobanana.AspectRatio3x4,
	nanobanana.AspectRatio4x3,
	nanobanana.AspectRatio4x5,
	nanobanana.AspectRatio5x4,
	nanobanana.AspectRatio9x16,
	nanobanana.AspectRatio16x9,
	nanobanana.AspectRatio21x9,
}

// NanoBananaProInfo is the model info for Gemini 3 Pro Image (nano-banana-pro).
var NanoBananaProInfo = nanobanana.ModelInfo{
	Name:         "nano-banana-pro",
	Provider:     nanobanana.ProviderGeminiAPI,
	APIModelName: nanobanana.ModelNanoBananaPro,

	Capabilities: nanobanana.ModelCapabilities{
		SupportsTextToImage:  true,
		SupportsImageEditing: true,
		MaxInputImages:       nanobanana.MaxInputImages,
		MaxOutputImages:      4,
	},

	ContextLength: 1048576, // 1M tokens

	ImageConstraints: nanobanana.ImageConstraints{
		SupportedAspectRatios: allAspectRatios,
		SupportedSizes: []nanobanana.ImageSize{
			nanobanana.ImageSize1K,
			nanobanana.ImageSize2K,
			nanobanana.ImageSize4K,
		},
	},
}

// NanoBananaInfo is the model info for Gemini 2.5 Flash Image (nano-banana).
var NanoBananaInfo = nanobanana.ModelInfo{
	Name:         "nano-banana",
	Provider:     nanobanana.ProviderGeminiAPI,
	APIModelName: nanobanana.ModelNanoBanana,

	Capabilities: nanobanana.ModelCapabilities{
		SupportsTextToImage:  true,
		SupportsImageEditing: true,
		MaxInputImages:       3, // Practical limit
		MaxOutputImages:      4,
	},

	ContextLength: 32768,

	ImageConstraints: nanobanana.ImageConstraints{
		SupportedAspectRatios: allAspectRatios,

		// Flash Image only supports ~1024px output (1K)
		SupportedSizes: []nanobanana.ImageSize{
			nanobanana.ImageSize1K,
		},
	},
}
