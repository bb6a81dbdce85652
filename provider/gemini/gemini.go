// Package gemini provides an ImageGenerator implementation using Google's Gemini API.
//
// This provider uses the Gemini API backend via the official Go SDK:
// https://github.com/googleapis/go-genai
package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/mhpenta/nanobanana"
	"google.golang.org/genai"
)

// GeminiGenerator implements ImageGenerator using Google's Gemini API.
type GeminiGenerator struct {
	client *genai.Client
}

// Ensure GeminiGenerator implements the interface.
var _ nanobanana.ImageGenerator = (*GeminiGenerator)(nil)

// New creates a new GeminiGenerator from a ProviderConfig.
func New(ctx context.Context, config *nanobanana.ProviderConfig) (*GeminiGenerator, error) {
	if config == nil || config.APIKey == "" {
		return nil, nanobanana.ErrMissingCredential
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: config.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{client: client}, nil
}

// NewWithAPIKey creates a generator with an API key for Gemini API.
func NewWithAPIKey(ctx context.Context, apiKey string) (*GeminiGenerator, error) {
	return New(ctx, &nanobanana.ProviderConfig{
		Provider: nanobanana.ProviderGeminiAPI,
		APIKey:   apiKey,
	})
}

// Factory adapts NewWithAPIKey to nanobanana.GeneratorFactory.
func Factory(baseURL string) nanobanana.GeneratorFactory {
	return func(ctx context.Context, apiKey string) (nanobanana.ImageGenerator, error) {
		return New(ctx, &nanobanana.ProviderConfig{
			Provider: nanobanana.ProviderGeminiAPI,
			APIKey:   apiKey,
			BaseURL:  baseURL,
		})
	}
}

// Generate sends the prompt and reference images in a single user turn.
func (g *GeminiGenerator) Generate(ctx context.Context, req *nanobanana.GenerationRequest) (*nanobanana.Response, error) {
	if req == nil {
		return nil, errors.New("nil generation request")
	}

	modelName := resolveModel(req)
	contents := []*genai.Content{
		genai.NewContentFromParts(buildParts(req), genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, modelName, contents, buildGenerateContentConfig(req))
	if err != nil {
		return nil, classifyError(err, modelName)
	}

	return parseResult(result)
}

// Models returns the model definitions supported by this provider.
func (g *GeminiGenerator) Models() []nanobanana.ModelInfo {
	return SupportedModels()
}

// SupportedModels lists the known image models without needing a client.
// The first model (NanoBananaPro) is the default.
func SupportedModels() []nanobanana.ModelInfo {
	return []nanobanana.ModelInfo{
		NanoBananaProInfo,
		NanoBananaInfo,
	}
}

// Close releases any resources held by the generator.
func (g *GeminiGenerator) Close() error {
	// The genai.Client doesn't require explicit closing in the current SDK
	return nil
}

func resolveModel(req *nanobanana.GenerationRequest) string {
	if req.Model != "" {
		return req.Model.String()
	}
	return APIModelNanoBananaPro
}

// buildParts places the prompt first, then every reference image in order.
func buildParts(req *nanobanana.GenerationRequest) []*genai.Part {
	parts := make([]*genai.Part, 0, len(req.Images)+1)
	parts = append(parts, genai.NewPartFromText(req.Prompt))
	for _, img := range req.Images {
		parts = append(parts, genai.NewPartFromBytes(img.Data, img.MIMEType))
	}
	return parts
}

// buildGenerateContentConfig maps the request options. Aspect ratio and size
// are only sent when supplied.
func buildGenerateContentConfig(req *nanobanana.GenerationRequest) *genai.GenerateContentConfig {
	imageConfig := &genai.ImageConfig{}
	if req.AspectRatio != "" {
		imageConfig.AspectRatio = req.AspectRatio.String()
	}
	if req.Size != "" {
		imageConfig.ImageSize = req.Size.String()
	}

	return &genai.GenerateContentConfig{
		ResponseModalities: req.ResponseModalities(),
		ImageConfig:        imageConfig,
	}
}

// parseResult converts the first candidate into response parts. Thought
// parts are dropped. Inline data is kept in its base64 wire form and only
// decoded when the image is written.
func parseResult(result *genai.GenerateContentResponse) (*nanobanana.Response, error) {
	if result == nil || len(result.Candidates) == 0 {
		return nil, nanobanana.ErrMalformedResponse
	}
	candidate := result.Candidates[0]
	if candidate == nil || candidate.Content == nil || candidate.Content.Parts == nil {
		if candidate != nil && candidate.FinishReason != "" && candidate.FinishReason != genai.FinishReasonStop {
			return nil, fmt.Errorf("%w (finish reason: %s)", nanobanana.ErrMalformedResponse, candidate.FinishReason)
		}
		return nil, nanobanana.ErrMalformedResponse
	}

	resp := &nanobanana.Response{
		Parts:        make([]nanobanana.Part, 0, len(candidate.Content.Parts)),
		ModelVersion: result.ModelVersion,
	}

	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		if part.Text != "" {
			resp.Parts = append(resp.Parts, nanobanana.TextPart{Text: part.Text})
		}
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			resp.Parts = append(resp.Parts, nanobanana.ImagePart{
				MIMEType: part.InlineData.MIMEType,
				Data:     nanobanana.EncodeBase64(part.InlineData.Data),
			})
		}
	}

	if result.UsageMetadata != nil {
		resp.UsageMetadata = &nanobanana.UsageMetadata{
			PromptTokens:     int(result.UsageMetadata.PromptTokenCount),
			CandidatesTokens: int(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(result.UsageMetadata.TotalTokenCount),
		}
	}

	return resp, nil
}

// classifyError wraps API failures in a RemoteError. Transport failures
// that never produced an API error are wrapped with code 0.
func classifyError(err error, model string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &nanobanana.RemoteError{Model: model, Err: err}
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &nanobanana.RemoteError{
			Code:   apiErr.Code,
			Status: apiErr.Status,
			Model:  model,
			Err:    err,
		}
	}
	return &nanobanana.RemoteError{Model: model, Err: err}
}
