package service

import (
	"bitwise74/chores-api/internal/store"
	"bitwise74/chores-api/pkg/util"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// ObjectAPI is the part of *s3.Client the avatar uploader uses
type ObjectAPI interface {
	manager.UploadAPIClient
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type AvatarUploader struct {
	C         ObjectAPI
	Bucket    string
	PublicURL string
	repo      store.Repository
	uploader  *manager.Uploader
}

func NewAvatarUploader(c ObjectAPI, bucket, publicURL string, repo store.Repository) *AvatarUploader {
	return &AvatarUploader{
		C:         c,
		Bucket:    bucket,
		PublicURL: publicURL,
		repo:      repo,
		uploader: manager.NewUploader(c, func(u *manager.Uploader) {
			u.Concurrency = 2
		}),
	}
}

// Upload stores body as the avatar of userID and points the user's image at
// it. The object is removed again if the user can't be updated.
func (u *AvatarUploader) Upload(ctx context.Context, userID string, body io.Reader, size int64, contentType, ext string) (string, error) {
	key := fmt.Sprintf("avatars/%s-%s%s", userID, util.RandStr(10), ext)

	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	_, err := u.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.Bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar to s3, %w", err)
	}

	url := u.PublicURL + "/" + key

	if err := u.repo.SetUserImage(ctx, userID, url); err != nil {
		_, derr := u.C.DeleteObject(context.Background(), &s3.DeleteObjectInput{
			Bucket: aws.String(u.Bucket),
			Key:    aws.String(key),
		})
		if derr != nil {
			zap.L().Error("Failed to cleanup after failed upload", zap.String("key", key), zap.Error(derr))
		}

		return "", err
	}

	return url, nil
}
