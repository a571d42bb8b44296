// File: pkg/storage/aws/aws.go
package aws

import (
	"context"
	"log/slog"
	"s3ls/pkg/storage"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the subset of the S3 client used for listing
type S3API interface {
	ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

var _ S3API = (*s3.Client)(nil)

type AWSStorage struct {
	client S3API
	logger *slog.Logger
}

var _ storage.Storage = (*AWSStorage)(nil)

func NewAWSStorage(client S3API, logger *slog.Logger) *AWSStorage {
	return &AWSStorage{
		client: client,
		logger: logger,
	}
}

func (s *AWSStorage) Close() error {
	// The SDK client holds no resources that need releasing
	return nil
}
