package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vietdv277/stratus/internal/aws"
	"github.com/vietdv277/stratus/internal/config"
	"github.com/vietdv277/stratus/internal/provision"
	"github.com/vietdv277/stratus/internal/ui"
	"github.com/vietdv277/stratus/pkg/types"
)

var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Create the S3 bucket and CloudFront distribution for a site",
	Long: `Create an S3 bucket configured for public static-website hosting and a
CloudFront distribution in front of its website endpoint.

The bucket gets an index/error document, its public-access block removed, and
a public-read policy. The distribution rewrites 404 responses to the index
document with a 200 status so client-side routes keep working.

A bucket you already own is reused, not an error. If distribution creation
fails the command still succeeds and prints manual setup instructions.

Examples:
  stratus provision --bucket myapp-prod-site --region ap-southeast-1
  stratus provision --bucket myapp-prod-site --ssm-prefix /myapp/prod
  stratus provision --skip-distribution`,
	RunE: runProvision,
}

var (
	provisionBucket    string
	provisionIndex     string
	provisionError     string
	provisionSSMPrefix string
	provisionComment   string
	provisionSkipDist  bool
	provisionForce     bool
)

func init() {
	rootCmd.AddCommand(provisionCmd)

	provisionCmd.Flags().StringVar(&provisionBucket, "bucket", "", "Bucket name (globally unique)")
	provisionCmd.Flags().StringVar(&provisionIndex, "index", "", "Index document (default index.html)")
	provisionCmd.Flags().StringVar(&provisionError, "error-doc", "", "Error document (default index.html)")
	provisionCmd.Flags().StringVar(&provisionSSMPrefix, "ssm-prefix", "", "Record outputs as SSM parameters under this prefix")
	provisionCmd.Flags().StringVar(&provisionComment, "comment", "", "Distribution comment")
	provisionCmd.Flags().BoolVar(&provisionSkipDist, "skip-distribution", false, "Only set up the bucket")
	provisionCmd.Flags().BoolVar(&provisionForce, "force", false, "Create a distribution even when one is already recorded")
}

func runProvision(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings()
	if err != nil {
		return err
	}
	if provisionBucket != "" {
		s.Bucket = provisionBucket
	}
	if provisionIndex != "" {
		s.IndexDocument = provisionIndex
	}
	if provisionError != "" {
		s.ErrorDocument = provisionError
	}
	if provisionSSMPrefix != "" {
		s.SSMPrefix = provisionSSMPrefix
	}

	if s.Bucket == "" {
		return fmt.Errorf("bucket name is required (set --bucket, STRATUS_BUCKET, or a context)")
	}

	ctx := context.Background()
	client, err := newClient(ctx, s)
	if err != nil {
		return err
	}

	comment := provisionComment
	if comment == "" {
		comment = fmt.Sprintf("stratus site %s", s.Bucket)
	}

	p := provision.NewProvisioner(
		aws.NewStorageProvider(client),
		aws.NewCDNProvider(client),
		aws.NewParameterStore(client),
		os.Stdout,
	)

	result, err := p.Run(ctx, provision.Options{
		Bucket: types.Bucket{
			Name:          s.Bucket,
			Region:        s.Region,
			IndexDocument: s.IndexDocument,
			ErrorDocument: s.ErrorDocument,
		},
		Comment:          comment,
		ParamPrefix:      s.SSMPrefix,
		SkipDistribution: provisionSkipDist,
		Force:            provisionForce,
	})
	if err != nil {
		return err
	}

	// Keep the active context in sync with what was provisioned
	if s.Context != "" && result.Distribution != nil && result.Distribution.ID != "" {
		if err := config.UpdateContext(s.Context, func(c *config.Context) {
			c.DistributionID = result.Distribution.ID
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not update context %s: %v\n", s.Context, err)
		}
	}

	fmt.Println()
	if result.Distribution != nil && result.Distribution.DomainName != "" {
		fmt.Printf("Site will be served at %s\n", ui.OKStyle.Render("https://"+result.Distribution.DomainName))
		fmt.Println(ui.MutedStyle.Render("Distribution deployment takes a few minutes to propagate"))
	} else if result.DistributionErr == nil {
		fmt.Printf("Site is served at %s\n", ui.OKStyle.Render("http://"+result.WebsiteEndpoint))
	}

	return nil
}
