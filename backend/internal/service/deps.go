package service

import (
	"context"
	"io"
)

// ImageHost publishes images and returns their public URL.
type ImageHost interface {
	Upload(ctx context.Context, filename string, body io.Reader) (string, error)
	// Owns reports whether url was issued by this host.
	Owns(url string) bool
}

// LocalFiles gives access to uploads received by the upload middleware.
type LocalFiles interface {
	Open(filename string) (io.ReadCloser, error)
}
