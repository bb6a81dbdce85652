package nanobanana

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredential is returned when no API key can be resolved.
	ErrMissingCredential = errors.New("GEMINI_API_KEY not found in environment or .env file")

	// ErrFileNotFound is returned when an input image path does not exist.
	ErrFileNotFound = errors.New("image file not found")

	// ErrUnsupportedFormat is returned for input images whose extension has
	// no known MIME type.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrMalformedResponse is returned when the model response carries no
	// usable content.
	ErrMalformedResponse = errors.New("no valid response from API")

	// ErrDecode is returned when an inline image payload is not valid base64.
	ErrDecode = errors.New("invalid inline image data")

	// ErrInvalidConfig is returned when a GenerateConfig fails validation.
	ErrInvalidConfig = errors.New("invalid generate config")
)

// RemoteError wraps a failure reported by the remote API or the transport
// underneath it.
type RemoteError struct {
	Code   int    // HTTP status code, 0 when the request never got a response
	Status string // API status string, e.g. RESOURCE_EXHAUSTED
	Model  string
	Err    error // Underlying error from the provider
}

func (e *RemoteError) Error() string {
	if e.Code == 0 {
		return fmt.Sprintf("request to %s failed: %v", e.Model, e.Err)
	}
	return fmt.Sprintf("request to %s failed (%d %s): %v", e.Model, e.Code, e.Status, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// IsRateLimited reports whether the remote side rejected the request for
// quota reasons. The client never retries; this only shapes the message.
func (e *RemoteError) IsRateLimited() bool {
	return e.Code == 429 || e.Status == "RESOURCE_EXHAUSTED"
}

// IsRemoteError checks if an error is a RemoteError.
func IsRemoteError(err error) bool {
	var rErr *RemoteError
	return errors.As(err, &rErr)
}
