// Package storage provides blob storage for uploaded post images.
package storage

import (
	"context"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"

	apperrors "blogapp/internal/errors"
)

// ErrImageNotFound is returned when a stored image does not exist
var ErrImageNotFound = apperrors.Wrap(apperrors.ErrNotFound, "image not found")

// ImageStorage defines the interface for image blob operations
type ImageStorage interface {
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Close() error
}

// FileStorage stores images in a local directory through the blob API.
type FileStorage struct {
	bucket *blob.Bucket
}

// NewFileStorage opens (creating if needed) a file-backed bucket rooted at dir.
func NewFileStorage(dir string) (*FileStorage, error) {
	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to open image bucket")
	}
	return &FileStorage{bucket: bucket}, nil
}

// Save writes the image under a random name that keeps the original extension,
// and returns the generated name.
func (s *FileStorage) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	name := uuid.NewString() + filepath.Ext(originalName)

	w, err := s.bucket.NewWriter(ctx, name, nil)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to open image writer")
	}
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", apperrors.Wrap(err, "failed to write image")
	}
	if err := w.Close(); err != nil {
		return "", apperrors.Wrap(err, "failed to close image writer")
	}

	return name, nil
}

// Open returns a reader over a stored image. The caller must close it.
func (s *FileStorage) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	r, err := s.bucket.NewReader(ctx, name, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, apperrors.Wrapf(ErrImageNotFound, "name %q", name)
		}
		return nil, apperrors.Wrap(err, "failed to open image")
	}
	return r, nil
}

// Close releases the underlying bucket.
func (s *FileStorage) Close() error {
	return s.bucket.Close()
}
