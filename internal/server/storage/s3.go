// Package storage keeps uploaded profile images in an S3-compatible bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sc "github.com/dmitrijs2005/interviewprep/internal/server/config"
)

// ObjectPutter is the part of *s3.Client used for uploads.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Test seams.
var (
	loadDefaultAWSConfig  = awsconfig.LoadDefaultConfig
	newS3ClientFromConfig = s3.NewFromConfig
)

// S3ImageStorage writes objects with public-read semantics left to the bucket
// policy and returns their browser-facing URL.
type S3ImageStorage struct {
	client     ObjectPutter
	bucket     string
	publicBase string
}

// NewS3ImageStorage builds a path-style client for cfg's endpoint, which works
// for both MinIO and AWS.
func NewS3ImageStorage(ctx context.Context, cfg *sc.Config) (*S3ImageStorage, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3RootUser,
			cfg.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return NewWithClient(client, cfg.S3Bucket, cfg.PublicBaseURL()), nil
}

func NewWithClient(client ObjectPutter, bucket, publicBase string) *S3ImageStorage {
	return &S3ImageStorage{client: client, bucket: bucket, publicBase: publicBase}
}

// Put uploads body under key and returns the object's public URL.
func (s *S3ImageStorage) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return s.URL(key), nil
}

// URL is the public address of key: <public base>/<bucket>/<key>.
func (s *S3ImageStorage) URL(key string) string {
	return strings.TrimRight(s.publicBase, "/") + "/" + s.bucket + "/" + strings.TrimLeft(key, "/")
}
