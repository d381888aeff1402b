package provider

import (
	"context"
	"errors"

	"github.com/vietdv277/stratus/pkg/types"
)

// Common errors
var (
	ErrNotFound      = errors.New("resource not found")
	ErrNotConfigured = errors.New("provider not configured")
	ErrAuthFailed    = errors.New("authentication failed")
)

// StorageProvider defines the interface for bucket and object operations
type StorageProvider interface {
	// EnsureBucket creates the bucket if it does not already exist.
	// A bucket already owned by the caller is success, not failure.
	EnsureBucket(ctx context.Context, bucket types.Bucket) (created bool, err error)

	// ConfigureWebsite enables static-website hosting with public read access
	ConfigureWebsite(ctx context.Context, bucket types.Bucket) error

	// ListObjects returns all objects in a bucket with optional prefix
	ListObjects(ctx context.Context, bucket, prefix string) ([]types.Object, error)

	// DeleteObjects removes the given keys from the bucket
	DeleteObjects(ctx context.Context, bucket string, keys []string) error

	// PutObject uploads a single local file under its key
	PutObject(ctx context.Context, bucket string, asset types.Asset) error

	// WebsiteEndpoint returns the bucket's website hostname
	WebsiteEndpoint(bucket, region string) string
}

// CDNProvider defines the interface for content-delivery operations
type CDNProvider interface {
	// CreateDistribution creates a distribution in front of the origin
	CreateDistribution(ctx context.Context, spec types.DistributionSpec) (*types.Distribution, error)

	// GetDistribution returns a distribution by id
	GetDistribution(ctx context.Context, id string) (*types.Distribution, error)

	// Invalidate purges the given paths from the distribution's edge caches
	Invalidate(ctx context.Context, distributionID string, paths []string) (*types.Invalidation, error)
}

// ParameterStore persists provisioning outputs so later runs can resolve them.
type ParameterStore interface {
	// Get returns a parameter value, or ErrNotFound
	Get(ctx context.Context, name string) (string, error)

	// Set creates or updates a parameter
	Set(ctx context.Context, name, value string) error
}
