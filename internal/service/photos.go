package service

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PhotoStore persists check-in photos and returns a public URL.
type PhotoStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// S3PhotoStore stores photos in an S3 bucket with public-read objects.
type S3PhotoStore struct {
	client *s3.Client
	bucket string
}

var _ PhotoStore = (*S3PhotoStore)(nil)

// NewS3PhotoStore creates an S3PhotoStore.
func NewS3PhotoStore(client *s3.Client, bucket string) *S3PhotoStore {
	return &S3PhotoStore{client: client, bucket: bucket}
}

// Upload writes the object and returns its public URL.
func (s *S3PhotoStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key), nil
}
