package nanobanana

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// PathParts is a file path split at the extension separator of its last
// element. Stem + Ext reproduces the original path.
type PathParts struct {
	Stem string
	Ext  string
}

// SplitPath splits p into stem and extension. Dotfiles such as ".env" have
// no extension.
func SplitPath(p string) PathParts {
	ext := filepath.Ext(p)
	if ext == "" || ext == filepath.Base(p) {
		return PathParts{Stem: p}
	}
	return PathParts{Stem: strings.TrimSuffix(p, ext), Ext: ext}
}

// WithSuffix returns stem-suffix+ext.
func (pp PathParts) WithSuffix(suffix string) string {
	return pp.Stem + "-" + suffix + pp.Ext
}

// MIMETypeForPath maps a file extension to an image MIME type. The file
// contents are never inspected.
func MIMETypeForPath(p string) (string, error) {
	ext := strings.ToLower(SplitPath(p).Ext)
	switch ext {
	case ".png":
		return "image/png", nil
	case ".jpg", ".jpeg":
		return "image/jpeg", nil
	case ".gif":
		return "image/gif", nil
	case ".webp":
		return "image/webp", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// LoadInputImage reads a local reference image fully into memory.
func LoadInputImage(p string) (InputImage, error) {
	if _, err := os.Stat(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return InputImage{}, fmt.Errorf("%w: %s", ErrFileNotFound, p)
		}
		return InputImage{}, fmt.Errorf("stat %s: %w", p, err)
	}

	mimeType, err := MIMETypeForPath(p)
	if err != nil {
		return InputImage{}, err
	}

	data, err := os.ReadFile(p)
	if err != nil {
		return InputImage{}, fmt.Errorf("read %s: %w", p, err)
	}

	img := InputImage{Data: data, MIMEType: mimeType, Path: p}
	if err := ValidateInputImage(img); err != nil {
		return InputImage{}, err
	}
	return img, nil
}

// EncodeBase64 encodes raw bytes the way inline data travels on the wire.
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeBase64 decodes an inline payload.
func DecodeBase64(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return data, nil
}
