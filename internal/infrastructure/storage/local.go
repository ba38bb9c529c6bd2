package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/unnati04102007/ResQNet/domain"
)

// LocalImageStore implements domain.ImageStore on the local filesystem.
type LocalImageStore struct {
	baseDir string
}

// NewLocalImageStore creates the upload directory if needed.
func NewLocalImageStore(baseDir string) (domain.ImageStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", baseDir, err)
	}
	return &LocalImageStore{baseDir: baseDir}, nil
}

// Save implements domain.ImageStore. The caller supplies the final
// collision-free filename; Save returns the stored relative path.
func (s *LocalImageStore) Save(filename string, r io.Reader) (string, error) {
	target := filepath.Join(s.baseDir, filepath.Base(filename))

	file, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, r); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return target, nil
}
