// Package provision implements the one-shot setup sequence: a bucket
// configured for public static-website hosting, fronted by a distribution
// that rewrites 404s to the index document for client-side routing.
package provision

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vietdv277/stratus/pkg/provider"
	"github.com/vietdv277/stratus/pkg/types"
)

// Parameter names written under the configured prefix
const (
	ParamBucket         = "bucket"
	ParamRegion         = "region"
	ParamDistributionID = "distribution-id"
)

// Provisioner creates the bucket and distribution for one site
type Provisioner struct {
	Storage provider.StorageProvider
	CDN     provider.CDNProvider
	Params  provider.ParameterStore // nil disables output persistence
	Out     io.Writer
}

// Options describe one provisioning run
type Options struct {
	Bucket           types.Bucket
	Comment          string
	ParamPrefix      string // persist outputs under this prefix, requires Params
	SkipDistribution bool
	Force            bool // create a distribution even when one is already recorded
}

// Result captures what a provisioning run produced
type Result struct {
	BucketCreated   bool
	WebsiteEndpoint string
	Distribution    *types.Distribution
	DistributionErr error // distribution failure is swallowed, not fatal
}

// NewProvisioner creates a provisioner writing progress to out
func NewProvisioner(storage provider.StorageProvider, cdn provider.CDNProvider, params provider.ParameterStore, out io.Writer) *Provisioner {
	if out == nil {
		out = os.Stdout
	}
	return &Provisioner{Storage: storage, CDN: cdn, Params: params, Out: out}
}

// Run performs the provisioning sequence. A bucket already owned by the
// caller is success. Distribution-creation failure is reported through
// Result.DistributionErr and manual-setup instructions, never through the
// error return, so the run still exits cleanly.
func (p *Provisioner) Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Bucket.Name == "" {
		return nil, fmt.Errorf("bucket name is required")
	}

	created, err := p.Storage.EnsureBucket(ctx, opts.Bucket)
	if err != nil {
		return nil, err
	}
	if created {
		fmt.Fprintf(p.Out, "Created bucket %s in %s\n", opts.Bucket.Name, opts.Bucket.Region)
	} else {
		fmt.Fprintf(p.Out, "Bucket %s already exists, reusing it\n", opts.Bucket.Name)
	}

	if err := p.Storage.ConfigureWebsite(ctx, opts.Bucket); err != nil {
		return nil, err
	}

	result := &Result{
		BucketCreated:   created,
		WebsiteEndpoint: p.Storage.WebsiteEndpoint(opts.Bucket.Name, opts.Bucket.Region),
	}
	fmt.Fprintf(p.Out, "Website endpoint: http://%s\n", result.WebsiteEndpoint)

	if opts.SkipDistribution {
		return result, p.persistOutputs(ctx, opts, result)
	}

	// A recorded distribution id means a previous run already created one.
	// Creating another would leave a duplicate behind, so refuse unless forced.
	if !opts.Force {
		if id, ok := p.recordedDistribution(ctx, opts.ParamPrefix); ok {
			fmt.Fprintf(p.Out, "Distribution %s already recorded, skipping creation (use --force to create another)\n", id)
			result.Distribution = &types.Distribution{ID: id}
			return result, p.persistOutputs(ctx, opts, result)
		}
	}

	dist, err := p.CDN.CreateDistribution(ctx, types.DistributionSpec{
		OriginDomain:  result.WebsiteEndpoint,
		IndexDocument: opts.Bucket.IndexDocument,
		Comment:       opts.Comment,
	})
	if err != nil {
		result.DistributionErr = err
		p.printManualInstructions(result.WebsiteEndpoint, opts.Bucket.IndexDocument, err)
		// The bucket is live, so its outputs still get recorded;
		// only the distribution id is left out.
		return result, p.persistOutputs(ctx, opts, result)
	}

	result.Distribution = dist
	fmt.Fprintf(p.Out, "Created distribution %s (%s)\n", dist.ID, dist.DomainName)

	return result, p.persistOutputs(ctx, opts, result)
}

// recordedDistribution looks up a previously persisted distribution id
func (p *Provisioner) recordedDistribution(ctx context.Context, prefix string) (string, bool) {
	if p.Params == nil || prefix == "" {
		return "", false
	}
	id, err := p.Params.Get(ctx, prefix+"/"+ParamDistributionID)
	if err != nil {
		if !errors.Is(err, provider.ErrNotFound) {
			fmt.Fprintf(p.Out, "Warning: could not check recorded distribution: %v\n", err)
		}
		return "", false
	}
	return id, id != ""
}

// persistOutputs writes the run's outputs to the parameter store
func (p *Provisioner) persistOutputs(ctx context.Context, opts Options, result *Result) error {
	if p.Params == nil || opts.ParamPrefix == "" {
		return nil
	}

	outputs := map[string]string{
		ParamBucket: opts.Bucket.Name,
		ParamRegion: opts.Bucket.Region,
	}
	if result.Distribution != nil {
		outputs[ParamDistributionID] = result.Distribution.ID
	}

	for name, value := range outputs {
		full := opts.ParamPrefix + "/" + name
		if err := p.Params.Set(ctx, full, value); err != nil {
			return fmt.Errorf("provisioned resources are live but recording %s failed: %w", full, err)
		}
	}

	fmt.Fprintf(p.Out, "Recorded outputs under %s/\n", opts.ParamPrefix)
	return nil
}

func (p *Provisioner) printManualInstructions(endpoint, index string, cause error) {
	fmt.Fprintf(p.Out, "Warning: distribution creation failed: %v\n", cause)
	fmt.Fprintln(p.Out, "The bucket is ready; create the distribution manually:")
	fmt.Fprintf(p.Out, "  1. Origin domain: %s (custom origin, HTTP only)\n", endpoint)
	fmt.Fprintln(p.Out, "  2. Viewer protocol policy: redirect HTTP to HTTPS")
	fmt.Fprintf(p.Out, "  3. Custom error response: 404 -> /%s with status 200\n", index)
	fmt.Fprintln(p.Out, "  4. Set STRATUS_DISTRIBUTION_ID (or the context's distribution_id) to the new id")
}
