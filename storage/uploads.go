package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pivot/backend/extractor"
	"github.com/pivot/backend/logger"
)

var (
	// ErrUnsupportedFileType is returned when neither MIME type nor extension is accepted
	ErrUnsupportedFileType = errors.New("unsupported upload type")

	// ErrFileTooLarge is returned when an upload exceeds the size ceiling
	ErrFileTooLarge = errors.New("file too large")
)

// Upload is a résumé file held on local disk for the duration of one request
type Upload struct {
	Path     string
	Filename string
	MIMEType string
	Size     int64
}

// UploadStore keeps uploaded résumés in a local directory until they are
// extracted. Files never outlive the request that created them.
type UploadStore struct {
	dir      string
	maxBytes int64
}

// NewUploadStore creates the upload directory if needed
func NewUploadStore(dir string, maxBytes int64) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &UploadStore{dir: dir, maxBytes: maxBytes}, nil
}

// MaxBytes returns the upload ceiling
func (s *UploadStore) MaxBytes() int64 {
	return s.maxBytes
}

// Validate checks the declared type and size before any bytes are written
func (s *UploadStore) Validate(filename, mimeType string, size int64) error {
	if !extractor.IsSupported(mimeType, filename) {
		return ErrUnsupportedFileType
	}
	if size > s.maxBytes {
		return ErrFileTooLarge
	}
	return nil
}

// Save validates and writes r to a uniquely named file. The copy is capped
// at the size ceiling regardless of the declared size.
func (s *UploadStore) Save(ctx context.Context, r io.Reader, filename, mimeType string, size int64) (*Upload, error) {
	if err := s.Validate(filename, mimeType, size); err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir, objectName(filename))
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload file: %w", err)
	}

	written, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil && written > s.maxBytes {
		err = ErrFileTooLarge
	}

	upload := &Upload{Path: path, Filename: filename, MIMEType: mimeType, Size: written}
	if err != nil {
		s.Remove(ctx, upload)
		if errors.Is(err, ErrFileTooLarge) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to write upload: %w", err)
	}

	logger.Debug(ctx, "upload stored", "file", filepath.Base(path), "size", written, "mime_type", mimeType)
	return upload, nil
}

// SaveBytes writes an in-memory document, used by the MCP tools
func (s *UploadStore) SaveBytes(ctx context.Context, data []byte, filename, mimeType string) (*Upload, error) {
	if mimeType == "" {
		mimeType = ContentType(filepath.Ext(filename))
	}
	return s.Save(ctx, bytes.NewReader(data), filename, mimeType, int64(len(data)))
}

// Read returns the stored bytes
func (s *UploadStore) Read(u *Upload) ([]byte, error) {
	data, err := os.ReadFile(u.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	return data, nil
}

// Remove deletes the stored file. Failures are logged, not returned.
func (s *UploadStore) Remove(ctx context.Context, u *Upload) {
	if u == nil || u.Path == "" {
		return
	}
	if err := os.Remove(u.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn(ctx, "failed to delete upload", "file", filepath.Base(u.Path), "error", err)
		return
	}
	logger.Debug(ctx, "upload removed", "file", filepath.Base(u.Path))
}

// objectName builds resume-<unix-nanos>-<uuid><ext>; the extension is kept
// only when it is one of the accepted ones.
func objectName(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if extractor.DetectFormat("", filename) == "" {
		ext = ""
	}
	return fmt.Sprintf("resume-%d-%s%s", time.Now().UnixNano(), uuid.New().String(), ext)
}

// ContentType maps a file extension to the MIME type the extractor expects
func ContentType(ext string) string {
	switch strings.ToLower(ext) {
	case ".pdf":
		return extractor.MIMEPDF
	case ".doc":
		return extractor.MIMEDOC
	case ".docx":
		return extractor.MIMEDOCX
	case ".odt":
		return extractor.MIMEODT
	case ".png":
		return extractor.MIMEPNG
	case ".jpg", ".jpeg":
		return extractor.MIMEJPEG
	default:
		return "application/octet-stream"
	}
}
