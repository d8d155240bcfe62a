// Package upload validates cover images and stores them in object storage.
package upload

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp"

	"github.com/BruksfildServices01/fitness-booking/internal/httperr"
)

const DefaultMaxBytes int64 = 1_000_000

var allowedTypes = map[string]bool{
	"jpeg": true,
	"jpg":  true,
	"png":  true,
	"gif":  true,
	"webp": true,
}

// File is an image read fully into memory.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Store persists an image and returns its public URL.
type Store interface {
	Store(ctx context.Context, data []byte, contentType, originalName string) (string, error)
}

// FromMultipart reads fh into memory, refusing anything over maxBytes.
func FromMultipart(fh *multipart.FileHeader, maxBytes int64) (*File, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if fh.Size > maxBytes {
		return nil, errTooLarge(maxBytes)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, httperr.ErrUpload(err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxBytes+1))
	if err != nil {
		return nil, httperr.ErrUpload(err)
	}
	if int64(len(data)) > maxBytes {
		return nil, errTooLarge(maxBytes)
	}

	return &File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// Validate accepts jpeg, jpg, png, gif and webp images only. The extension,
// the declared MIME type and the decoded header must all agree on that.
func (f *File) Validate(maxBytes int64) error {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if int64(len(f.Data)) > maxBytes {
		return errTooLarge(maxBytes)
	}
	if len(f.Data) == 0 {
		return httperr.ErrValidation("empty_file", "Cover image is empty")
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(f.Name)), ".")
	if !allowedTypes[ext] {
		return errNotImage()
	}

	mediaType, _, err := mime.ParseMediaType(f.ContentType)
	if err != nil {
		return errNotImage()
	}
	major, sub, ok := strings.Cut(strings.ToLower(mediaType), "/")
	if !ok || major != "image" || !allowedTypes[sub] {
		return errNotImage()
	}

	if _, _, err := image.DecodeConfig(bytes.NewReader(f.Data)); err != nil {
		return errNotImage()
	}

	return nil
}

func errNotImage() error {
	return httperr.ErrValidation("invalid_file_type", "Images only! (jpeg, jpg, png, gif, webp)")
}

func errTooLarge(maxBytes int64) error {
	return httperr.ErrValidation("file_too_large", fmt.Sprintf("File too large (max %d bytes)", maxBytes))
}
