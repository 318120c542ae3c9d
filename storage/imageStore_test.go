package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG.
var pngPixel, _ = base64.StdEncoding.DecodeString(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII=")

func TestDetectImage(t *testing.T) {
	image, err := DetectImage(bytes.NewReader(pngPixel))
	require.NoError(t, err)
	assert.Equal(t, "image/png", image.ContentType)
	assert.True(t, strings.HasSuffix(image.Name, ".png"), image.Name)

	body, err := io.ReadAll(image.Body)
	require.NoError(t, err)
	assert.Equal(t, pngPixel, body)
}

func TestDetectImageRejectsOtherContent(t *testing.T) {
	_, err := DetectImage(strings.NewReader("#!/bin/sh\necho not an image\n"))
	assert.ErrorIs(t, err, ErrNotAnImage)
}

func TestLocalStoreSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Images")
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	image, err := DetectImage(bytes.NewReader(pngPixel))
	require.NoError(t, err)

	url, err := store.Save(context.Background(), image)
	require.NoError(t, err)
	assert.Equal(t, LocalURLPrefix+"/"+image.Name, url)

	written, err := os.ReadFile(filepath.Join(dir, image.Name))
	require.NoError(t, err)
	assert.Equal(t, pngPixel, written)
}

type fakeUploader struct {
	input *s3.PutObjectInput
	err   error
}

func (f *fakeUploader) Upload(_ context.Context, input *s3.PutObjectInput, _ ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	f.input = input
	if f.err != nil {
		return nil, f.err
	}
	return &manager.UploadOutput{Location: "https://bucket.s3.amazonaws.com/" + *input.Key}, nil
}

func TestS3StoreSave(t *testing.T) {
	fake := &fakeUploader{}
	store := &S3Store{Bucket: "bucket", uploader: fake}

	url, err := store.Save(context.Background(), Image{Name: "a.png", ContentType: "image/png", Body: bytes.NewReader(pngPixel)})
	require.NoError(t, err)
	assert.Equal(t, "https://bucket.s3.amazonaws.com/a.png", url)
	assert.Equal(t, "bucket", *fake.input.Bucket)
	assert.Equal(t, types.ObjectCannedACLPublicRead, fake.input.ACL)
	assert.Equal(t, "image/png", *fake.input.ContentType)

	fake.err = errors.New("network down")
	_, err = store.Save(context.Background(), Image{Name: "b.png", Body: bytes.NewReader(pngPixel)})
	assert.ErrorContains(t, err, "network down")
}
