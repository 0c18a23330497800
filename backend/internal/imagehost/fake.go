package imagehost

import (
	"context"
	"io"
	"strings"
	"sync"
)

// Fake keeps uploads in memory for tests.
type Fake struct {
	BaseURL string
	// Err, when set, is returned by every Upload.
	Err error

	mu      sync.Mutex
	uploads map[string][]byte
}

func NewFake(baseURL string) *Fake {
	return &Fake{BaseURL: strings.TrimRight(baseURL, "/"), uploads: make(map[string][]byte)}
}

func (f *Fake) Upload(ctx context.Context, filename string, body io.Reader) (string, error) {
	if f.Err != nil {
		uploadsTotal.WithLabelValues(outcomeFailure).Inc()
		return "", f.Err
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	url := f.BaseURL + "/" + objectKey("", filename)
	f.mu.Lock()
	f.uploads[url] = data
	f.mu.Unlock()
	uploadsTotal.WithLabelValues(outcomeSuccess).Inc()
	return url, nil
}

func (f *Fake) Owns(url string) bool {
	return ownedBy(f.BaseURL, url)
}

// Uploaded returns the bytes stored under url.
func (f *Fake) Uploaded(url string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.uploads[url]
	return data, ok
}
