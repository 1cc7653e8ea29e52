package filesystem

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/rios0rios0/cmistools/internal/domain/entities"
)

const (
	defaultMimeType = "application/octet-stream"
	directoryMode   = 0o755
	fileMode        = 0o644
)

// LocalFileRepository implements repositories.LocalFileRepository on the OS filesystem.
type LocalFileRepository struct{}

// NewLocalFileRepository creates a new LocalFileRepository.
func NewLocalFileRepository() *LocalFileRepository {
	return &LocalFileRepository{}
}

// CreateDirectory creates path, refusing to reuse anything already there.
func (it *LocalFileRepository) CreateDirectory(path string) error {
	if err := os.Mkdir(path, directoryMode); err != nil {
		return fmt.Errorf("%w: %w", entities.ErrDirectoryCreate, err)
	}
	return nil
}

// WriteFile streams reader into a hidden temp file next to path and renames it
// into place once everything has been written.
func (it *LocalFileRepository) WriteFile(path string, reader io.Reader) (int64, error) {
	dir := filepath.Dir(path)
	tmpName := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".part")

	tmp, err := os.OpenFile(tmpName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fileMode)
	if err != nil {
		return 0, fmt.Errorf("create temp for %s: %w", path, err)
	}

	written, err := io.Copy(tmp, reader)
	if err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return 0, fmt.Errorf("close temp for %s: %w", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return 0, fmt.Errorf("rename temp to %s: %w", path, err)
	}

	return written, nil
}

// IsDirectory reports whether path is a directory.
func (it *LocalFileRepository) IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// Open opens a regular file for upload. The MIME type is guessed from the extension.
func (it *LocalFileRepository) Open(path string) (*entities.ContentStream, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if !info.Mode().IsRegular() {
		file.Close()
		return nil, &fs.PathError{Op: "open", Path: path, Err: errors.New("not a regular file")}
	}

	return &entities.ContentStream{
		Filename: filepath.Base(path),
		MimeType: MimeTypeOf(path),
		Length:   info.Size(),
		Reader:   file,
	}, nil
}

// MimeTypeOf guesses a MIME type from the file extension.
func MimeTypeOf(path string) string {
	if mimeType := mime.TypeByExtension(filepath.Ext(path)); mimeType != "" {
		return mimeType
	}
	return defaultMimeType
}
