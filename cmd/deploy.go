package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vietdv277/stratus/internal/aws"
	"github.com/vietdv277/stratus/internal/release"
	"github.com/vietdv277/stratus/internal/ui"
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Upload the build directory to the site bucket",
	Long: `Replace the bucket's contents with the build directory's contents.

Every deploy deletes all existing objects and uploads every local file under
its relative path. Files under assets/ get a one-year immutable cache-control
header; everything else is served with no-cache so a new release is picked up
immediately. When a distribution id is configured the whole cache is
invalidated afterwards.

Examples:
  stratus deploy
  stratus deploy --dir build
  stratus deploy --bucket myapp-prod-site --distribution-id E2ABCDEF123`,
	RunE: runDeploy,
}

var (
	deployBucket string
	deployDist   string
	deployDir    string
)

func init() {
	rootCmd.AddCommand(deployCmd)

	deployCmd.Flags().StringVar(&deployBucket, "bucket", "", "Bucket name")
	deployCmd.Flags().StringVar(&deployDist, "distribution-id", "", "Distribution to invalidate after upload")
	deployCmd.Flags().StringVar(&deployDir, "dir", "", "Build-output directory (default dist)")
}

func runDeploy(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings()
	if err != nil {
		return err
	}
	if deployBucket != "" {
		s.Bucket = deployBucket
	}
	if deployDist != "" {
		s.DistributionID = deployDist
	}
	if deployDir != "" {
		s.BuildDir = deployDir
	}

	// Fail fast before touching AWS at all
	if _, err := os.Stat(s.BuildDir); os.IsNotExist(err) {
		return fmt.Errorf("build directory %s does not exist, run your build first", s.BuildDir)
	}

	ctx := context.Background()
	client, err := newClient(ctx, s)
	if err != nil {
		return err
	}

	fillFromParameterStore(ctx, aws.NewParameterStore(client), s)

	if s.Bucket == "" {
		return fmt.Errorf("bucket name is required (set --bucket, STRATUS_BUCKET, or a context)")
	}

	fmt.Printf("Deploying %s to %s\n", s.BuildDir, ui.BucketStyle.Render(s.Bucket))

	d := release.NewDeployer(aws.NewStorageProvider(client), aws.NewCDNProvider(client), os.Stdout)
	summary, err := d.Run(ctx, release.Options{
		Bucket:         s.Bucket,
		BuildDir:       s.BuildDir,
		DistributionID: s.DistributionID,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("%s %d uploaded, %d deleted\n", ui.OKStyle.Render("Deploy complete:"), summary.Uploaded, summary.Deleted)
	return nil
}
