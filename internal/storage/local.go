// Package storage persists uploaded assets on the local filesystem under a
// single flat directory. Stored names are fresh UUIDs, so writes never
// collide and nothing is ever overwritten; the client filename is used only
// to derive an extension and never reaches the filesystem as a path.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"quickreel/backend/internal/apperror"
	"quickreel/backend/models"
)

// copyBufSize bounds per-file memory while streaming uploads to disk.
const copyBufSize = 1 << 20

// LocalStore writes uploaded assets into a directory on local disk.
type LocalStore struct {
	dir string
}

// New creates the upload directory if needed and returns a store over it.
func New(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Dir returns the directory assets are stored under.
func (s *LocalStore) Dir() string {
	return s.dir
}

// StoreAssets writes each file of an upload batch to disk in order and
// returns their stored names and URLs. An empty batch is rejected before
// anything is written. The first I/O error aborts the whole batch; files
// already written stay on disk (no rollback).
func (s *LocalStore) StoreAssets(baseURL string, files []*multipart.FileHeader) (*models.UploadResult, error) {
	if len(files) == 0 {
		return nil, apperror.NewValidation("No files uploaded")
	}

	saved := make([]models.UploadedAsset, 0, len(files))
	for _, fh := range files {
		asset, err := s.storeOne(baseURL, fh)
		if err != nil {
			return nil, apperror.NewInternal(err)
		}
		saved = append(saved, asset)
	}

	return &models.UploadResult{Count: len(saved), Files: saved}, nil
}

// storeOne streams a single upload part to disk in bounded chunks. Both
// ends are closed before the next file starts because the defers are
// scoped here.
func (s *LocalStore) storeOne(baseURL string, fh *multipart.FileHeader) (models.UploadedAsset, error) {
	src, err := fh.Open()
	if err != nil {
		return models.UploadedAsset{}, fmt.Errorf("failed to open upload %q: %w", fh.Filename, err)
	}
	defer src.Close()

	storedName := uuid.NewString() + safeExtension(fh.Filename)
	path := filepath.Join(s.dir, storedName)

	dst, err := os.Create(path)
	if err != nil {
		return models.UploadedAsset{}, fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer dst.Close()

	buf := make([]byte, copyBufSize)
	if _, err := io.CopyBuffer(dst, src, buf); err != nil {
		return models.UploadedAsset{}, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return models.UploadedAsset{
		Original: fh.Filename,
		StoredAs: storedName,
		URL:      fmt.Sprintf("%s/uploads/%s", baseURL, storedName),
		Mime:     fh.Header.Get("Content-Type"),
	}, nil
}

// safeExtension derives an extension from an untrusted client filename:
// the text after the last dot of the final path element, lower-cased, and
// only if it is purely ASCII letters and digits. Anything else counts as
// no extension.
func safeExtension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" || ext == "." {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
