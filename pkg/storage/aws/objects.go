// File: pkg/storage/aws/objects.go
package aws

import (
	"context"
	"s3ls/pkg/storage"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func (s *AWSStorage) ListObjects(ctx context.Context, req storage.ListingRequest) (storage.ObjectList, error) {
	s.logger.Debug("Starting AWS ListObjects operation (delimited)", "bucket", req.Bucket, "prefix", req.Prefix)

	out, err := s.client.ListObjectsV2(ctx, listObjectsInput(req))
	if err != nil {
		return storage.ObjectList{}, wrapError("ListObjectsV2", req.Bucket, err)
	}

	result := storage.ObjectList{
		Bucket:         req.Bucket,
		Prefix:         req.Prefix,
		CommonPrefixes: make([]string, 0, len(out.CommonPrefixes)),
		Keys:           make([]string, 0, len(out.Contents)),
	}

	for _, p := range out.CommonPrefixes {
		result.CommonPrefixes = append(result.CommonPrefixes, awssdk.ToString(p.Prefix))
	}
	for _, obj := range out.Contents {
		result.Keys = append(result.Keys, awssdk.ToString(obj.Key))
	}

	if awssdk.ToBool(out.IsTruncated) {
		s.logger.Debug("Listing truncated, only the first page is shown", "bucket", req.Bucket, "prefix", req.Prefix)
	}

	return result, nil
}

// An empty prefix is sent as no filter at all rather than an empty-string filter
func listObjectsInput(req storage.ListingRequest) *s3.ListObjectsV2Input {
	input := &s3.ListObjectsV2Input{
		Bucket:    awssdk.String(req.Bucket),
		Delimiter: awssdk.String(storage.Delimiter),
	}
	if req.Prefix != "" {
		input.Prefix = awssdk.String(req.Prefix)
	}
	return input
}
