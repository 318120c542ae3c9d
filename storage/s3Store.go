package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// S3Store uploads public-read images to Bucket.
type S3Store struct {
	Bucket   string
	uploader uploader
}

// NewS3Store builds an uploader from the default AWS credential chain.
func NewS3Store(ctx context.Context, bucket string) (*S3Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return &S3Store{Bucket: bucket, uploader: manager.NewUploader(client)}, nil
}

func (s *S3Store) Save(ctx context.Context, image Image) (string, error) {
	result, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(image.Name),
		Body:        image.Body,
		ACL:         types.ObjectCannedACLPublicRead,
		ContentType: aws.String(image.ContentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s to s3://%s: %w", image.Name, s.Bucket, err)
	}
	return result.Location, nil
}
