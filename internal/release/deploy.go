// Package release implements the deploy sequence: replace the bucket's
// contents with the build directory's contents, then invalidate the
// distribution's cache. Every deploy is delete-all-then-upload-all; the
// bucket is never diffed against the local tree.
package release

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vietdv277/stratus/pkg/provider"
	"github.com/vietdv277/stratus/pkg/types"
)

// Deployer runs one release against a bucket and optional distribution
type Deployer struct {
	Storage provider.StorageProvider
	CDN     provider.CDNProvider
	Out     io.Writer
}

// Options describe one deploy run
type Options struct {
	Bucket         string
	BuildDir       string
	DistributionID string // empty skips invalidation
}

// NewDeployer creates a deployer writing progress to out
func NewDeployer(storage provider.StorageProvider, cdn provider.CDNProvider, out io.Writer) *Deployer {
	if out == nil {
		out = os.Stdout
	}
	return &Deployer{Storage: storage, CDN: cdn, Out: out}
}

// Run performs the deploy. On success the bucket's object set equals
// exactly the build directory's file set. Any failure aborts the run;
// there is no retry and no partial-success reporting.
func (d *Deployer) Run(ctx context.Context, opts Options) (*types.ReleaseSummary, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}

	// Fail fast before any remote call
	assets, err := CollectAssets(opts.BuildDir)
	if err != nil {
		return nil, err
	}
	if len(assets) == 0 {
		return nil, fmt.Errorf("build directory %s is empty, nothing to deploy", opts.BuildDir)
	}

	summary := &types.ReleaseSummary{Bucket: opts.Bucket}

	// Clear out the previous release
	existing, err := d.Storage.ListObjects(ctx, opts.Bucket, "")
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		keys := make([]string, len(existing))
		for i, obj := range existing {
			keys[i] = obj.Key
		}
		if err := d.Storage.DeleteObjects(ctx, opts.Bucket, keys); err != nil {
			return nil, err
		}
		summary.Deleted = len(keys)
		fmt.Fprintf(d.Out, "Deleted %d existing objects\n", len(keys))
	}

	// Upload sequentially
	for _, asset := range assets {
		if err := d.Storage.PutObject(ctx, opts.Bucket, asset); err != nil {
			return nil, err
		}
		summary.Uploaded++
		fmt.Fprintf(d.Out, "  %s (%s)\n", asset.Key, asset.ContentType)
	}

	if opts.DistributionID == "" {
		fmt.Fprintln(d.Out, "No distribution id configured, skipping cache invalidation")
		return summary, nil
	}

	inv, err := d.CDN.Invalidate(ctx, opts.DistributionID, []string{"/*"})
	if err != nil {
		return nil, err
	}
	summary.Invalidation = inv
	fmt.Fprintf(d.Out, "Invalidation %s submitted (%s)\n", inv.ID, inv.Status)

	return summary, nil
}
