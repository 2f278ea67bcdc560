package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjects struct {
	put     *s3.PutObjectInput
	body    []byte
	deleted *s3.DeleteObjectInput
	err     error
}

func (f *fakeObjects) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.put = params
	f.body, _ = io.ReadAll(params.Body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjects) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deleted = params
	return &s3.DeleteObjectOutput{}, nil
}

func TestR2Uploader_Upload(t *testing.T) {
	fake := &fakeObjects{}
	uploader := newR2Uploader(fake, "brackets", "https://cdn.example.com/")

	res, err := uploader.Upload(context.Background(), "tournament_images/a b.png", "image/png", bytes.NewReader([]byte("png")))
	require.NoError(t, err)

	assert.Equal(t, "tournament_images/a b.png", res.Key)
	assert.Equal(t, "https://cdn.example.com/tournament_images/a%20b.png", res.URL)
	assert.Equal(t, "brackets", aws.ToString(fake.put.Bucket))
	assert.Equal(t, "image/png", aws.ToString(fake.put.ContentType))
	assert.Equal(t, []byte("png"), fake.body)
}

func TestR2Uploader_Errors(t *testing.T) {
	fake := &fakeObjects{err: errors.New("boom")}
	uploader := newR2Uploader(fake, "brackets", "https://cdn.example.com")

	_, err := uploader.Upload(context.Background(), "k", "image/png", bytes.NewReader(nil))
	assert.ErrorContains(t, err, "boom")

	err = uploader.Delete(context.Background(), "k")
	assert.ErrorContains(t, err, "boom")
}

func TestNewR2Uploader_RequiresConfig(t *testing.T) {
	_, err := NewR2Uploader(context.Background(), R2Config{AccountID: "acc"})
	assert.Error(t, err)
}
