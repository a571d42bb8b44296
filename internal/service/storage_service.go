// File: internal/service/storage_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"s3ls/pkg/storage"
)

// StorageProvider hands out an initialized storage client; implemented by factory.Factory
type StorageProvider interface {
	GetStorageProvider(ctx context.Context) (storage.Storage, error)
}

type StorageService struct {
	providerFactory StorageProvider
	logger          *slog.Logger
}

func NewStorageService(providerFactory StorageProvider, logger *slog.Logger) *StorageService {
	return &StorageService{
		providerFactory: providerFactory,
		logger:          logger.With("service", "StorageService"),
	}
}

// --- Bucket Operations ---

func (s *StorageService) ListBuckets(ctx context.Context) ([]storage.Bucket, error) {
	s.logger.Debug("Starting ListBuckets operation")

	client, err := s.getStorageClient(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	buckets, err := client.ListBuckets(ctx)
	if err != nil {
		s.logger.Debug("Failed to list buckets", "error", err)
		return nil, fmt.Errorf("error listing buckets: %w", err)
	}

	s.logger.Debug("Successfully fetched buckets", "count", len(buckets))
	return buckets, nil
}

// --- Object Operations ---

func (s *StorageService) ListObjects(ctx context.Context, req storage.ListingRequest) (storage.ObjectList, error) {
	s.logger.Debug("Starting ListObjects operation", "bucket", req.Bucket, "prefix", req.Prefix)

	client, err := s.getStorageClient(ctx)
	if err != nil {
		return storage.ObjectList{}, err
	}
	defer client.Close()

	objects, err := client.ListObjects(ctx, req)
	if err != nil {
		s.logger.Debug("Failed to list objects", "bucket", req.Bucket, "prefix", req.Prefix, "error", err)
		return storage.ObjectList{}, fmt.Errorf("error listing objects in '%s': %w", req.Bucket, err)
	}

	s.logger.Debug("Successfully fetched objects", "bucket", req.Bucket, "folders", len(objects.CommonPrefixes), "files", len(objects.Keys))
	return objects, nil
}

// Helper to initialize the storage client and handle common error logging
func (s *StorageService) getStorageClient(ctx context.Context) (storage.Storage, error) {
	client, err := s.providerFactory.GetStorageProvider(ctx)
	if err != nil {
		s.logger.Debug("Failed to initialize provider", "error", err)
		return nil, fmt.Errorf("error initializing provider: %w", err)
	}
	return client, nil
}
