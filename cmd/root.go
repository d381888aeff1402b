package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Global flags
	profile     string
	region      string
	contextName string
)

var rootCmd = &cobra.Command{
	Use:   "stratus",
	Short: "Stratus - deploy single-page applications to S3 and CloudFront",
	Long: `Stratus provisions and deploys static single-page applications on AWS:
an S3 bucket configured for public website hosting, fronted by a CloudFront
distribution that rewrites 404s back to the app's entry document.

Typical workflow:
  stratus provision --bucket myapp-prod-site   # once per project
  stratus deploy --dir dist                    # once per release

Context-Aware Commands:
  stratus use add prod --bucket myapp-prod-site --region ap-southeast-1
  stratus use prod             # switch to the prod site
  stratus status               # show current context and auth status
  stratus contexts             # list all configured contexts

Inspection:
  stratus objects              # list what the bucket currently serves

Configuration is resolved in order: flags, STRATUS_* environment variables,
the active context, defaults.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "AWS profile to use")
	rootCmd.PersistentFlags().StringVarP(&region, "region", "r", "", "AWS region to use")
	rootCmd.PersistentFlags().StringVarP(&contextName, "context", "c", "", "Context to use instead of the current one")

	// Bind flags to viper
	_ = viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	_ = viper.BindPFlag("region", rootCmd.PersistentFlags().Lookup("region"))
}

func initConfig() {
	// Read from environment variables (STRATUS_BUCKET, STRATUS_REGION, ...)
	viper.SetEnvPrefix("STRATUS")
	viper.AutomaticEnv()

	// Priority for profile: --profile flag > AWS_PROFILE env
	if profile == "" {
		profile = os.Getenv("AWS_PROFILE")
	}

	// Use AWS_REGION if --region not specified
	if region == "" {
		region = os.Getenv("AWS_REGION")
		if region == "" {
			region = os.Getenv("AWS_DEFAULT_REGION")
		}
	}
}
