package storage

import (
	"context"
	"io"
)

type UploadResult struct {
	Key string
	URL string
}

type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (*UploadResult, error)
	Delete(ctx context.Context, key string) error
}
