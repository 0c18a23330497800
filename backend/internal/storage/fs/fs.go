package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/threads-be/threads/backend/internal/service"
)

// Storage keeps uploaded images on local disk until they are published
// to the image host. Files live flat under rootPath.
type Storage struct {
	rootPath string
}

var _ service.LocalFiles = (*Storage)(nil)

func New(rootPath string) (*Storage, error) {
	p := filepath.Clean(rootPath)

	if err := os.MkdirAll(p, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory %s: %w", p, err)
	}

	return &Storage{rootPath: p}, nil
}

// Save writes data under a fresh uuid filename with the given extension
// and returns that filename.
func (s *Storage) Save(data io.Reader, extension string) (string, error) {
	ext := strings.ToLower(filepath.Ext("x" + extension))
	filename := uuid.NewString() + ext
	fullPath := filepath.Join(s.rootPath, filename)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, data); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to copy file data: %w", err)
	}

	return filename, nil
}

// Open returns the stored file. Names with directory parts are rejected.
func (s *Storage) Open(filename string) (io.ReadCloser, error) {
	fullPath, err := s.path(filename)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("upload %q not found: %w", filename, err)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

// Delete removes a stored file. A missing file is not an error.
func (s *Storage) Delete(filename string) error {
	fullPath, err := s.path(filename)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *Storage) path(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || filename == "." || filename == ".." {
		return "", fmt.Errorf("invalid upload filename %q", filename)
	}
	return filepath.Join(s.rootPath, filename), nil
}
