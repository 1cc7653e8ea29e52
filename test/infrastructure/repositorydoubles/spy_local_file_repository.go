//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/rios0rios0/cmistools/internal/domain/entities"
	"github.com/rios0rios0/cmistools/internal/domain/repositories"
)

// SpyLocalFileRepository implements repositories.LocalFileRepository in memory.
type SpyLocalFileRepository struct {
	// --- state ---
	Directories map[string]bool   // existing directories
	Files       map[string]string // file path -> content

	// --- CreateDirectory ---
	CreatedDirectories []string

	// --- WriteFile ---
	WriteErr     error
	WrittenPaths []string

	// --- Open ---
	OpenErr error
}

var _ repositories.LocalFileRepository = (*SpyLocalFileRepository)(nil)

// NewSpyLocalFileRepository creates a spy whose only directory is ".".
func NewSpyLocalFileRepository() *SpyLocalFileRepository {
	return &SpyLocalFileRepository{
		Directories: map[string]bool{".": true},
		Files:       map[string]string{},
	}
}

func (s *SpyLocalFileRepository) CreateDirectory(path string) error {
	path = filepath.Clean(path)
	if s.Directories[path] || s.hasFile(path) {
		return fmt.Errorf("%w: %w", entities.ErrDirectoryCreate,
			&fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrExist})
	}
	s.Directories[path] = true
	s.CreatedDirectories = append(s.CreatedDirectories, path)
	return nil
}

func (s *SpyLocalFileRepository) WriteFile(path string, reader io.Reader) (int64, error) {
	if s.WriteErr != nil {
		return 0, s.WriteErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return 0, err
	}
	path = filepath.Clean(path)
	s.Files[path] = string(data)
	s.WrittenPaths = append(s.WrittenPaths, path)
	return int64(len(data)), nil
}

func (s *SpyLocalFileRepository) IsDirectory(path string) (bool, error) {
	path = filepath.Clean(path)
	if s.Directories[path] {
		return true, nil
	}
	if s.hasFile(path) {
		return false, nil
	}
	return false, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
}

func (s *SpyLocalFileRepository) Open(path string) (*entities.ContentStream, error) {
	if s.OpenErr != nil {
		return nil, s.OpenErr
	}
	content, ok := s.Files[filepath.Clean(path)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: errors.New("not a regular file")}
	}
	return &entities.ContentStream{
		Filename: filepath.Base(path),
		MimeType: "text/plain",
		Length:   int64(len(content)),
		Reader:   io.NopCloser(strings.NewReader(content)),
	}, nil
}

func (s *SpyLocalFileRepository) hasFile(path string) bool {
	_, ok := s.Files[path]
	return ok
}
