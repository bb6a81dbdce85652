package nanobanana

import (
	"errors"
	"fmt"
)

// ErrImageTooLarge is returned when an input image exceeds MaxImageSize.
var ErrImageTooLarge = errors.New("image data exceeds maximum size")

// Image size limits
const (
	// MaxImageSize is the maximum allowed inline image size in bytes (20MB)
	MaxImageSize = 20 * 1024 * 1024

	// MaxInputImages is the maximum number of reference images per request
	MaxInputImages = 14
)

// ValidMIMETypes contains the supported image MIME types
var ValidMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// ValidateInputImage validates a loaded input image.
func ValidateInputImage(img InputImage) error {
	if len(img.Data) > MaxImageSize {
		return fmt.Errorf("%w: %s is %d bytes (max %d)", ErrImageTooLarge, img.Path, len(img.Data), MaxImageSize)
	}
	if !ValidMIMETypes[img.MIMEType] {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, img.MIMEType)
	}
	return nil
}
