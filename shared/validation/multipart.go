package validation

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidateAndParseMultipart caps the request body at maxSize and parses the multipart form.
// When the limit is hit the server stops reading and the client may observe a connection reset.
func ValidateAndParseMultipart(r *http.Request, w http.ResponseWriter, maxSize int64) error {
	if r.ContentLength > maxSize {
		return fmt.Errorf("%w: request exceeds %.1f MB", ErrPayloadTooLarge, FormatSizeMB(maxSize))
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return fmt.Errorf("%w: request exceeds %.1f MB", ErrPayloadTooLarge, FormatSizeMB(maxSize))
		}
		return fmt.Errorf("%w: %v", ErrInvalidMultipart, err)
	}

	return nil
}

// CalculateMaxRequestSize returns the maximum request size including overhead buffer.
// It adds a buffer (typically 1 MiB) for form fields and multipart overhead.
func CalculateMaxRequestSize(maxAttachmentSize int64, bufferSize int64) int64 {
	return maxAttachmentSize + bufferSize
}

// FormatSizeMB converts bytes to megabytes for user-friendly error messages.
func FormatSizeMB(bytes int64) float64 {
	return float64(bytes) / (1024 * 1024)
}
