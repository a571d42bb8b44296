// Package testutil provides in-memory stand-ins for the storage layer.
package testutil

import (
	"context"

	"s3ls/pkg/storage"
)

// FakeStorage returns canned listings and records the requests it receives
type FakeStorage struct {
	Buckets    []storage.Bucket
	Objects    storage.ObjectList
	Err        error
	Requests   []storage.ListingRequest
	BucketCall int
	Closed     bool
}

var _ storage.Storage = (*FakeStorage)(nil)

func (f *FakeStorage) ListBuckets(ctx context.Context) ([]storage.Bucket, error) {
	f.BucketCall++
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Buckets, nil
}

func (f *FakeStorage) ListObjects(ctx context.Context, req storage.ListingRequest) (storage.ObjectList, error) {
	f.Requests = append(f.Requests, req)
	if f.Err != nil {
		return storage.ObjectList{}, f.Err
	}
	list := f.Objects
	list.Bucket = req.Bucket
	list.Prefix = req.Prefix
	return list, nil
}

func (f *FakeStorage) Close() error {
	f.Closed = true
	return nil
}

// FakeProvider hands out Storage, or fails with Err
type FakeProvider struct {
	Storage storage.Storage
	Err     error
}

func (p *FakeProvider) GetStorageProvider(ctx context.Context) (storage.Storage, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Storage, nil
}
