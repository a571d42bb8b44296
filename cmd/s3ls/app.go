// File: cmd/s3ls/app.go
package main

import (
	"log/slog"
	"s3ls/internal/config"
	"s3ls/internal/service"
	"s3ls/pkg/formatter"
)

// appContainer holds all the shared dependencies for the application
type appContainer struct {
	Config           *config.Config
	StorageService   *service.StorageService
	StorageFormatter *formatter.StorageFormatter
	Logger           *slog.Logger
}

// Creates and initializes a new application container
func newApp(cfg *config.Config, provider service.StorageProvider, logger *slog.Logger) *appContainer {
	return &appContainer{
		Config:           cfg,
		StorageService:   service.NewStorageService(provider, logger),
		StorageFormatter: formatter.NewStorageFormatter(),
		Logger:           logger,
	}
}
