package cmd

import (
	"context"

	"github.com/spf13/viper"

	"github.com/vietdv277/stratus/internal/aws"
	"github.com/vietdv277/stratus/internal/config"
	"github.com/vietdv277/stratus/pkg/provider"
)

// siteSettings are the fully resolved inputs for a provision or deploy run.
// Resolution order: flags > STRATUS_* environment > active context > defaults.
type siteSettings struct {
	Context        string
	Bucket         string
	Region         string
	DistributionID string
	BuildDir       string
	Profile        string
	SSMPrefix      string
	IndexDocument  string
	ErrorDocument  string
}

func resolveSettings() (*siteSettings, error) {
	s := &siteSettings{
		Region:        "us-east-1",
		BuildDir:      "dist",
		IndexDocument: "index.html",
		ErrorDocument: "index.html",
	}

	// Active context is the base layer
	var siteCtx *config.Context
	var name string
	var err error
	if contextName != "" {
		siteCtx, err = config.GetContext(contextName)
		name = contextName
	} else {
		siteCtx, name, err = config.GetCurrentContext()
	}
	if err != nil {
		return nil, err
	}
	if siteCtx != nil {
		s.Context = name
		if siteCtx.Bucket != "" {
			s.Bucket = siteCtx.Bucket
		}
		if siteCtx.Region != "" {
			s.Region = siteCtx.Region
		}
		if siteCtx.DistributionID != "" {
			s.DistributionID = siteCtx.DistributionID
		}
		if siteCtx.BuildDir != "" {
			s.BuildDir = siteCtx.BuildDir
		}
		if siteCtx.Profile != "" {
			s.Profile = siteCtx.Profile
		}
		if siteCtx.SSMPrefix != "" {
			s.SSMPrefix = siteCtx.SSMPrefix
		}
		if siteCtx.IndexDocument != "" {
			s.IndexDocument = siteCtx.IndexDocument
		}
		if siteCtx.ErrorDocument != "" {
			s.ErrorDocument = siteCtx.ErrorDocument
		}
	}

	// Environment overrides the context
	if v := viper.GetString("bucket"); v != "" {
		s.Bucket = v
	}
	if v := viper.GetString("region"); v != "" {
		s.Region = v
	}
	if v := viper.GetString("distribution_id"); v != "" {
		s.DistributionID = v
	}
	if v := viper.GetString("build_dir"); v != "" {
		s.BuildDir = v
	}
	if v := viper.GetString("ssm_prefix"); v != "" {
		s.SSMPrefix = v
	}

	// Global flags override everything
	if region != "" {
		s.Region = region
	}
	if profile != "" {
		s.Profile = profile
	}

	return s, nil
}

// newClient builds the AWS client bundle for the resolved settings
func newClient(ctx context.Context, s *siteSettings) (*aws.Client, error) {
	var opts []aws.ClientOption
	if s.Profile != "" {
		opts = append(opts, aws.WithProfile(s.Profile))
	}
	if s.Region != "" {
		opts = append(opts, aws.WithRegion(s.Region))
	}
	return aws.NewClient(ctx, opts...)
}

// fillFromParameterStore resolves a missing bucket or distribution id from
// the parameters a previous provision run recorded.
func fillFromParameterStore(ctx context.Context, params provider.ParameterStore, s *siteSettings) {
	if s.SSMPrefix == "" {
		return
	}

	if s.Bucket == "" {
		if v, err := params.Get(ctx, s.SSMPrefix+"/bucket"); err == nil {
			s.Bucket = v
		}
	}
	if s.DistributionID == "" {
		if v, err := params.Get(ctx, s.SSMPrefix+"/distribution-id"); err == nil {
			s.DistributionID = v
		}
	}
}
