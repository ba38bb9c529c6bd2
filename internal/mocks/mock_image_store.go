package mocks

import (
	"io"

	"github.com/unnati04102007/ResQNet/domain"
)

// MockImageStore implements domain.ImageStore interface for testing
type MockImageStore struct {
	SaveFunc func(filename string, r io.Reader) (string, error)

	// Saved records filenames stored through the default behavior.
	Saved []string
}

// NewMockImageStore creates a new MockImageStore with default behaviors
func NewMockImageStore() *MockImageStore {
	return &MockImageStore{}
}

// Save stores an uploaded image
func (m *MockImageStore) Save(filename string, r io.Reader) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(filename, r)
	}
	// Default behavior: drain the reader and record the name
	if r != nil {
		io.Copy(io.Discard, r)
	}
	m.Saved = append(m.Saved, filename)
	return filename, nil
}

// Compile-time interface compliance verification
var _ domain.ImageStore = (*MockImageStore)(nil)
