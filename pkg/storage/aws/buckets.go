// File: pkg/storage/aws/buckets.go
package aws

import (
	"context"
	"s3ls/pkg/storage"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func (s *AWSStorage) ListBuckets(ctx context.Context) ([]storage.Bucket, error) {
	s.logger.Debug("Starting AWS ListBuckets operation")

	out, err := s.client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, wrapError("ListBuckets", "", err)
	}

	buckets := make([]storage.Bucket, 0, len(out.Buckets))
	for _, b := range out.Buckets {
		buckets = append(buckets, storage.Bucket{
			Name: awssdk.ToString(b.Name),
		})
	}

	s.logger.Debug("Fetched buckets", "count", len(buckets))
	return buckets, nil
}
