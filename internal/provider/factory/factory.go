// File: internal/provider/factory/factory.go
package factory

import (
	"context"
	"fmt"
	"log/slog"
	"s3ls/internal/config"
	"s3ls/pkg/storage"
	awsstorage "s3ls/pkg/storage/aws"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Used when neither the config nor the SDK's ambient resolution yields a region
const DefaultRegion = "us-east-1"

type Factory struct {
	cfg    *config.Config
	logger *slog.Logger
}

func NewFactory(cfg *config.Config, logger *slog.Logger) *Factory {
	return &Factory{
		cfg:    cfg,
		logger: logger,
	}
}

// Initializes the S3 storage client. Credentials are resolved by the SDK's default chain;
// SDK retries are disabled so each listing is exactly one request.
func (f *Factory) GetStorageProvider(ctx context.Context) (storage.Storage, error) {
	awsCfg, err := f.loadAWSConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	providerLogger := f.logger.With("provider", "aws", "region", awsCfg.Region)
	if f.cfg.AWS.Endpoint != "" {
		providerLogger = providerLogger.With("endpoint", f.cfg.AWS.Endpoint)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if f.cfg.AWS.Endpoint != "" {
			o.BaseEndpoint = awssdk.String(f.cfg.AWS.Endpoint)
		}
		o.UsePathStyle = f.cfg.AWS.UsePathStyle
	})
	providerLogger.Debug("Initialized S3 client")

	return awsstorage.NewAWSStorage(client, providerLogger), nil
}

func (f *Factory) loadAWSConfig(ctx context.Context) (awssdk.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRetryMaxAttempts(1),
	}
	if f.cfg.AWS.Region != "" {
		opts = append(opts, awsconfig.WithRegion(f.cfg.AWS.Region))
	}
	if f.cfg.AWS.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(f.cfg.AWS.Profile))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return awssdk.Config{}, err
	}

	if awsCfg.Region == "" {
		f.logger.Debug("No AWS region resolved, falling back to default", "region", DefaultRegion)
		awsCfg.Region = DefaultRegion
	}

	return awsCfg, nil
}
