// File: pkg/storage/aws/errors.go
package aws

import (
	"errors"
	"net/http"
	"s3ls/pkg/storage"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"
)

// Wraps an SDK error into a storage.Error, tagging the kinds callers may want to match on
func wrapError(op, bucket string, err error) error {
	return &storage.Error{
		Op:     op,
		Bucket: bucket,
		Kind:   classify(err),
		Err:    err,
	}
}

func classify(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchBucket":
			return storage.ErrBucketNotFound
		case "AccessDenied", "AllAccessDisabled", "InvalidAccessKeyId", "SignatureDoesNotMatch":
			return storage.ErrAccessDenied
		}
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		switch respErr.HTTPStatusCode() {
		case http.StatusNotFound:
			return storage.ErrBucketNotFound
		case http.StatusForbidden:
			return storage.ErrAccessDenied
		}
	}

	return nil
}
