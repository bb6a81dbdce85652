package nanobanana

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Materializer turns a model response into files on disk.
type Materializer struct {
	Storage Storage
	Deriver *FilenameDeriver
	Logger  *slog.Logger
}

// NewMaterializer returns a Materializer writing to local files, naming
// them after output or, when empty, after the prompt.
func NewMaterializer(output, prompt string, opts ...MaterializerOption) *Materializer {
	m := &Materializer{
		Storage: LocalStorage{},
		Deriver: &FilenameDeriver{Output: output, Prompt: prompt},
		Logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// MaterializerOption configures a Materializer.
type MaterializerOption func(*Materializer)

// WithStorage sets the backend images are written to.
func WithStorage(s Storage) MaterializerOption {
	return func(m *Materializer) {
		m.Storage = s
	}
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) MaterializerOption {
	return func(m *Materializer) {
		m.Logger = logger
	}
}

// Materialize walks resp.Parts once, in order. Text parts are concatenated;
// each image part is decoded and written as soon as it is reached. An error
// stops the walk and leaves files already written in place.
func (m *Materializer) Materialize(ctx context.Context, resp *Response, req *GenerationRequest) (*Result, error) {
	if resp == nil || len(resp.Parts) == 0 {
		return nil, ErrMalformedResponse
	}

	var text strings.Builder
	files := make([]string, 0, resp.ImageCount())
	imageCount := 0

	for _, part := range resp.Parts {
		switch p := part.(type) {
		case TextPart:
			text.WriteString(p.Text)

		case ImagePart:
			imageCount++
			path := m.Deriver.Path(imageCount)

			data, err := DecodeBase64(p.Data)
			if err != nil {
				return nil, fmt.Errorf("image %d: %w", imageCount, err)
			}

			if ext := extensionFromMIME(p.MIMEType); !strings.EqualFold(SplitPath(path).Ext, ext) {
				m.Logger.Debug("image type differs from file extension",
					"path", path,
					"mime_type", p.MIMEType,
				)
			}

			saved, err := m.Storage.SaveFile(ctx, data, path, p.MIMEType)
			if err != nil {
				return nil, fmt.Errorf("write image %d to %s: %w", imageCount, path, err)
			}

			m.Logger.Debug("image written",
				"path", saved,
				"bytes", len(data),
				"mime_type", p.MIMEType,
			)
			files = append(files, saved)

		default:
			return nil, fmt.Errorf("%w: unexpected part type %T", ErrMalformedResponse, part)
		}
	}

	result := &Result{
		Files:       files,
		Model:       req.Model.String(),
		Text:        optional(text.String()),
		AspectRatio: optional(req.AspectRatio.String()),
		Size:        optional(req.Size.String()),
	}
	return result, nil
}
