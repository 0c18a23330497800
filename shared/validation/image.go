package validation

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"

	_ "golang.org/x/image/webp"
)

// ValidateImage checks that the uploaded file has an allowed MIME type and decodes as an image.
// The file offset is rewound before returning.
func ValidateImage(file multipart.File, fileHeader *multipart.FileHeader, allowedMimes []string) (string, error) {
	mimeType, err := DetectMimeType(fileHeader)
	if err != nil {
		return "", err
	}

	if !BuildAllowedMimeMap(allowedMimes)[mimeType] {
		return "", fmt.Errorf("%w: %s (file: %s)", ErrInvalidMimeType, mimeType, fileHeader.Filename)
	}

	_, _, decodeErr := image.DecodeConfig(file)
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind uploaded file: %w", err)
	}
	if decodeErr != nil {
		return "", fmt.Errorf("%w (file: %s)", ErrNotAnImage, fileHeader.Filename)
	}

	return mimeType, nil
}

func BuildAllowedMimeMap(mimes []string) map[string]bool {
	allowedMimes := make(map[string]bool, len(mimes))
	for _, m := range mimes {
		allowedMimes[m] = true
	}
	return allowedMimes
}

func DetectMimeType(fileHeader *multipart.FileHeader) (string, error) {
	mimeType := fileHeader.Header.Get("Content-Type")

	// If no Content-Type or it's generic, detect from extension
	if mimeType == "" || mimeType == "application/octet-stream" {
		ext := filepath.Ext(fileHeader.Filename)
		detectedType := mime.TypeByExtension(ext)
		if detectedType != "" {
			mimeType = detectedType
		}
	}

	if mimeType == "" {
		return "", fmt.Errorf("could not detect MIME type for file: %s", fileHeader.Filename)
	}

	return mimeType, nil
}
