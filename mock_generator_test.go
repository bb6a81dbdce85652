package nanobanana

import (
	"context"
)

// MockImageGenerator is a mock implementation of ImageGenerator.
type MockImageGenerator struct {
	GenerateFunc func(ctx context.Context, req *GenerationRequest) (*Response, error)
	ModelsFunc   func() []ModelInfo
	CloseFunc    func() error

	Calls  int
	Closed bool
}

func (m *MockImageGenerator) Generate(ctx context.Context, req *GenerationRequest) (*Response, error) {
	m.Calls++
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, req)
	}
	return &Response{}, nil
}

func (m *MockImageGenerator) Models() []ModelInfo {
	if m.ModelsFunc != nil {
		return m.ModelsFunc()
	}
	return []ModelInfo{}
}

func (m *MockImageGenerator) Close() error {
	m.Closed = true
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// countingFactory returns a GeneratorFactory handing out gen and a pointer
// to the number of times it was invoked.
func countingFactory(gen ImageGenerator) (GeneratorFactory, *int) {
	n := 0
	return func(ctx context.Context, apiKey string) (ImageGenerator, error) {
		n++
		return gen, nil
	}, &n
}

// memStorage records writes instead of touching disk.
type memStorage struct {
	files   map[string][]byte
	order   []string
	failAt  int
	failErr error
}

func newMemStorage() *memStorage {
	return &memStorage{files: make(map[string][]byte)}
}

func (s *memStorage) SaveFile(ctx context.Context, data []byte, path string, contentType string) (string, error) {
	if s.failAt > 0 && len(s.order)+1 == s.failAt {
		return "", s.failErr
	}
	s.files[path] = data
	s.order = append(s.order, path)
	return path, nil
}
