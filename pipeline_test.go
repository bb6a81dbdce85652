package nanobanana

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func noEnv(string) (string, bool) { return "", false }

func TestPipeline_MissingCredential(t *testing.T) {
	gen := &MockImageGenerator{}
	factory, calls := countingFactory(gen)

	p := &Pipeline{
		Credentials:  EnvCredentials{Lookup: noEnv, EnvFile: filepath.Join(t.TempDir(), ".env")},
		NewGenerator: factory,
		Logger:       discardLogger(),
	}

	report := p.Run(context.Background(), "a cat", DefaultConfig())
	assert.False(t, report.OK)
	assert.Equal(t, 1, report.ExitCode())
	assert.Equal(t, "GEMINI_API_KEY not found in environment or .env file", report.Error)
	assert.Zero(t, *calls)
	assert.Zero(t, gen.Calls)
}

func TestPipeline_NilCredentials(t *testing.T) {
	p := &Pipeline{Logger: discardLogger()}
	report := p.Run(context.Background(), "a cat", DefaultConfig())
	assert.Equal(t, ErrMissingCredential.Error(), report.Error)
}

func TestPipeline_InputImageErrorsBeforeNetwork(t *testing.T) {
	dir := t.TempDir()
	_, data := writeTestPNG(t, dir, "ok.png")
	bmp := filepath.Join(dir, "foo.bmp")
	require.NoError(t, os.WriteFile(bmp, data, 0644))

	tests := []struct {
		name    string
		images  []string
		wantErr error
	}{
		{"unsupported format", []string{bmp}, ErrUnsupportedFormat},
		{"missing file", []string{filepath.Join(dir, "ok.png"), filepath.Join(dir, "gone.png")}, ErrFileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &MockImageGenerator{}
			factory, calls := countingFactory(gen)
			p := &Pipeline{
				Credentials:  StaticCredentials("key"),
				NewGenerator: factory,
				Logger:       discardLogger(),
			}

			cfg := DefaultConfig()
			cfg.Images = tt.images
			report := p.Run(context.Background(), "edit", cfg)

			assert.False(t, report.OK)
			assert.Zero(t, *calls)

			_, err := p.run(context.Background(), "edit", cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPipeline_Success(t *testing.T) {
	dir := t.TempDir()
	refPath, refData := writeTestPNG(t, dir, "ref.png")
	out := filepath.Join(dir, "out.png")

	var gotKey string
	var gotReq *GenerationRequest
	gen := &MockImageGenerator{
		GenerateFunc: func(ctx context.Context, req *GenerationRequest) (*Response, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			gotReq = req
			return &Response{
				Parts: []Part{
					TextPart{Text: "Here you go."},
					imagePart("first"),
					imagePart("second"),
				},
				UsageMetadata: &UsageMetadata{PromptTokens: 10, CandidatesTokens: 20, TotalTokens: 30},
			}, nil
		},
	}

	p := &Pipeline{
		Credentials: StaticCredentials("secret"),
		NewGenerator: func(ctx context.Context, apiKey string) (ImageGenerator, error) {
			gotKey = apiKey
			return gen, nil
		},
		Logger: discardLogger(),
	}

	cfg := DefaultConfig()
	cfg.Output = out
	cfg.Images = []string{refPath}
	cfg.Size = ImageSize2K

	report := p.Run(context.Background(), "make it blue", cfg)
	require.True(t, report.OK, report.Error)
	assert.Equal(t, 0, report.ExitCode())

	assert.Equal(t, "secret", gotKey)
	require.NotNil(t, gotReq)
	assert.Equal(t, "make it blue", gotReq.Prompt)
	require.Len(t, gotReq.Images, 1)
	assert.Equal(t, refData, gotReq.Images[0].Data)
	assert.True(t, gotReq.IncludeText)

	assert.Equal(t, []string{out, filepath.Join(dir, "out-2.png")}, report.Data.Files)
	assert.Equal(t, "gemini-3-pro-image-preview", report.Data.Model)
	require.NotNil(t, report.Data.Text)
	assert.Equal(t, "Here you go.", *report.Data.Text)
	assert.Nil(t, report.Data.AspectRatio)
	require.NotNil(t, report.Data.Size)
	assert.Equal(t, "2K", *report.Data.Size)

	assert.Equal(t, 1, gen.Calls)
	assert.True(t, gen.Closed)
}

func TestPipeline_DerivedNamesUseClock(t *testing.T) {
	storage := newMemStorage()
	gen := &MockImageGenerator{
		GenerateFunc: func(ctx context.Context, req *GenerationRequest) (*Response, error) {
			return &Response{Parts: []Part{imagePart("a"), imagePart("b")}}, nil
		},
	}
	factory, _ := countingFactory(gen)

	p := &Pipeline{
		Credentials:  StaticCredentials("k"),
		NewGenerator: factory,
		Storage:      storage,
		Logger:       discardLogger(),
		Now:          fixedClock(1700000000),
	}

	report := p.Run(context.Background(), "Sunset over hills", DefaultConfig())
	require.True(t, report.OK, report.Error)
	assert.Equal(t, []string{
		"sunset-over-hills-1700000000.png",
		"sunset-over-hills-1700000000-2.png",
	}, storage.order)
}

func TestPipeline_RemoteErrorPassesThrough(t *testing.T) {
	remote := &RemoteError{Code: 429, Status: "RESOURCE_EXHAUSTED", Model: "gemini-3-pro-image-preview", Err: errors.New("quota exceeded")}
	gen := &MockImageGenerator{
		GenerateFunc: func(ctx context.Context, req *GenerationRequest) (*Response, error) {
			return nil, remote
		},
	}
	factory, _ := countingFactory(gen)
	storage := newMemStorage()

	p := &Pipeline{
		Credentials:  StaticCredentials("k"),
		NewGenerator: factory,
		Storage:      storage,
		Logger:       discardLogger(),
	}

	report := p.Run(context.Background(), "x", DefaultConfig())
	assert.False(t, report.OK)
	assert.Equal(t, remote.Error(), report.Error)
	assert.Contains(t, report.Error, "quota exceeded")
	assert.Equal(t, 1, gen.Calls)
	assert.True(t, gen.Closed)
	assert.Empty(t, storage.order)
}

func TestPipeline_FactoryError(t *testing.T) {
	boom := errors.New("client init failed")
	p := &Pipeline{
		Credentials: StaticCredentials("k"),
		NewGenerator: func(ctx context.Context, apiKey string) (ImageGenerator, error) {
			return nil, boom
		},
		Logger: discardLogger(),
	}

	report := p.Run(context.Background(), "x", DefaultConfig())
	assert.Equal(t, "client init failed", report.Error)
}

func TestPipeline_EmptyResponseIsMalformed(t *testing.T) {
	gen := &MockImageGenerator{}
	factory, _ := countingFactory(gen)
	p := &Pipeline{
		Credentials:  StaticCredentials("k"),
		NewGenerator: factory,
		Storage:      newMemStorage(),
		Logger:       discardLogger(),
	}

	report := p.Run(context.Background(), "x", DefaultConfig())
	assert.Equal(t, "no valid response from API", report.Error)
}
