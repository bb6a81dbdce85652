package nanobanana

import (
	"context"
	"io/fs"
	"os"
)

// Storage persists generated images.
type Storage interface {
	// SaveFile writes data to path, creating or truncating it, and returns
	// the location it was saved to.
	SaveFile(ctx context.Context, data []byte, path string, contentType string) (string, error)
}

// LocalStorage writes images to the local filesystem. Existing files are
// overwritten without warning.
type LocalStorage struct {
	// Perm is the mode for newly created files, 0644 when zero
	Perm fs.FileMode
}

// SaveFile implements Storage.
func (s LocalStorage) SaveFile(ctx context.Context, data []byte, path string, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	perm := s.Perm
	if perm == 0 {
		perm = 0644
	}
	if err := os.WriteFile(path, data, perm); err != nil {
		return "", err
	}
	return path, nil
}

// extensionFromMIME returns a file extension for common image MIME types.
func extensionFromMIME(mime string) string {
	switch mime {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}
