package repositories

import (
	"io"

	"github.com/rios0rios0/cmistools/internal/domain/entities"
)

// LocalFileRepository is the local filesystem side of downloads and uploads.
type LocalFileRepository interface {
	// CreateDirectory creates exactly one directory. An existing path of any kind
	// is an error wrapping entities.ErrDirectoryCreate.
	CreateDirectory(path string) error

	// WriteFile replaces path with the full content of reader. Either the whole
	// content lands at path or path is left untouched.
	WriteFile(path string, reader io.Reader) (int64, error)

	// IsDirectory reports whether path is a directory. A missing path is an error.
	IsDirectory(path string) (bool, error)

	// Open opens a regular file as a content stream named after its base name.
	Open(path string) (*entities.ContentStream, error)
}
