package nanobanana

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Pipeline runs one generate invocation end to end.
type Pipeline struct {
	Credentials  CredentialProvider
	NewGenerator GeneratorFactory

	// Storage receives the images, LocalStorage when nil
	Storage Storage

	// Logger for progress and diagnostics, slog.Default when nil
	Logger *slog.Logger

	// Now is the clock used for derived filenames, time.Now when nil
	Now func() time.Time
}

// Run resolves credentials, builds the request, performs the remote call and
// writes the returned images. It always returns exactly one Report and never
// exits the process.
func (p *Pipeline) Run(ctx context.Context, prompt string, cfg GenerateConfig) Report {
	result, err := p.run(ctx, prompt, cfg)
	if err != nil {
		p.logger().Error("generation failed", "error", err.Error())
		return Failure(err)
	}
	return Success(result)
}

func (p *Pipeline) run(ctx context.Context, prompt string, cfg GenerateConfig) (*Result, error) {
	logger := p.logger()

	if p.Credentials == nil {
		return nil, ErrMissingCredential
	}
	apiKey, err := p.Credentials.APIKey()
	if err != nil {
		return nil, err
	}

	req, err := BuildRequest(prompt, cfg)
	if err != nil {
		return nil, err
	}

	if p.NewGenerator == nil {
		return nil, errors.New("no image generator configured")
	}
	gen, err := p.NewGenerator(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	defer gen.Close()

	logger.Debug("starting image generation",
		"model", req.Model.String(),
		"prompt_length", len(prompt),
		"input_images", len(req.Images),
		"aspect_ratio", req.AspectRatio.String(),
		"size", req.Size.String(),
	)

	callCtx, cancel := context.WithTimeout(ctx, cfg.resolvedTimeout())
	defer cancel()

	start := time.Now()
	resp, err := gen.Generate(callCtx, req)
	duration := time.Since(start)
	if err != nil {
		return nil, err
	}

	logAttrs := []any{
		"model", req.Model.String(),
		"duration_ms", duration.Milliseconds(),
		"image_count", resp.ImageCount(),
	}
	if resp.UsageMetadata != nil {
		logAttrs = append(logAttrs,
			"prompt_tokens", resp.UsageMetadata.PromptTokens,
			"response_tokens", resp.UsageMetadata.CandidatesTokens,
			"total_tokens", resp.UsageMetadata.TotalTokens,
		)
	}
	logger.Info("generation completed", logAttrs...)

	m := NewMaterializer(cfg.Output, prompt, WithLogger(logger))
	m.Deriver.Now = p.Now
	if p.Storage != nil {
		m.Storage = p.Storage
	}
	return m.Materialize(ctx, resp, req)
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}
