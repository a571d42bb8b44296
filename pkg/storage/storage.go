package storage

import "context"

// Storage is the read-only listing surface of an object storage backend
type Storage interface {
	// Issues a single list-buckets call and returns buckets in service order
	ListBuckets(ctx context.Context) ([]Bucket, error)
	// Issues a single delimited list-objects call; only the first page is returned
	ListObjects(ctx context.Context, req ListingRequest) (ObjectList, error)
	Close() error
}
