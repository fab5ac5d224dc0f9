package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errMultipart = errors.New("multipart upload not expected")

type fakeBucket struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeBucket() *fakeBucket {
	return &fakeBucket{objects: make(map[string][]byte)}
}

func (f *fakeBucket) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.objects[*in.Key] = b
	f.mu.Unlock()

	return &s3.PutObjectOutput{}, nil
}

func (f *fakeBucket) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	delete(f.objects, *in.Key)
	f.mu.Unlock()

	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeBucket) UploadPart(context.Context, *s3.UploadPartInput, ...func(*s3.Options)) (*s3.UploadPartOutput, error) {
	return nil, errMultipart
}

func (f *fakeBucket) CreateMultipartUpload(context.Context, *s3.CreateMultipartUploadInput, ...func(*s3.Options)) (*s3.CreateMultipartUploadOutput, error) {
	return nil, errMultipart
}

func (f *fakeBucket) CompleteMultipartUpload(context.Context, *s3.CompleteMultipartUploadInput, ...func(*s3.Options)) (*s3.CompleteMultipartUploadOutput, error) {
	return nil, errMultipart
}

func (f *fakeBucket) AbortMultipartUpload(context.Context, *s3.AbortMultipartUploadInput, ...func(*s3.Options)) (*s3.AbortMultipartUploadOutput, error) {
	return nil, errMultipart
}

func TestAvatarUpload(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	u := addUser(t, repo, "test@example.com")
	bucket := newFakeBucket()

	up := NewAvatarUploader(bucket, "avatars", "https://cdn.example.com", repo)

	data := []byte("\x89PNG\r\n\x1a\nnot really an image")
	url, err := up.Upload(ctx, u.ID, bytes.NewReader(data), int64(len(data)), "image/png", ".png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://cdn.example.com/avatars/"+u.ID+"-"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	key := strings.TrimPrefix(url, "https://cdn.example.com/")
	assert.Equal(t, data, bucket.objects[key])

	stored, err := repo.FindUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Image)
	assert.Equal(t, url, *stored.Image)
}

func TestAvatarUpload_UnknownUserRemovesObject(t *testing.T) {
	bucket := newFakeBucket()
	up := NewAvatarUploader(bucket, "avatars", "https://cdn.example.com", newRepo(t))

	data := []byte("image")
	_, err := up.Upload(context.Background(), "missing", bytes.NewReader(data), int64(len(data)), "image/png", ".png")
	require.Error(t, err)
	assert.Empty(t, bucket.objects)
}
