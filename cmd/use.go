package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/stratus/internal/config"
	"github.com/vietdv277/stratus/internal/ui"
)

var useCmd = &cobra.Command{
	Use:   "use [context-name]",
	Short: "Set the active context",
	Long: `Set the active site context for subsequent commands.

Once set, provision, deploy, objects, and status operate against that site
without needing --bucket each time. Run without arguments to pick a context
interactively.

Examples:
  stratus use prod             # Switch to the prod site
  stratus use                  # Pick a context interactively`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUse,
}

var useAddCmd = &cobra.Command{
	Use:   "add <context-name>",
	Short: "Add a new context",
	Long: `Add a new site context.

Examples:
  stratus use add prod --bucket myapp-prod-site --region ap-southeast-1 --profile prod-sso
  stratus use add staging --bucket myapp-staging --build-dir build --ssm-prefix /myapp/staging`,
	Args: cobra.ExactArgs(1),
	RunE: runUseAdd,
}

var useDeleteCmd = &cobra.Command{
	Use:   "delete <context-name>",
	Short: "Delete a context",
	Long: `Delete a site context.

Examples:
  stratus use delete old-env`,
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"rm", "remove"},
	RunE:    runUseDelete,
}

var (
	// Flags for use add
	useAddBucket    string
	useAddRegion    string
	useAddDist      string
	useAddBuildDir  string
	useAddProfile   string
	useAddSSMPrefix string
)

func init() {
	rootCmd.AddCommand(useCmd)
	useCmd.AddCommand(useAddCmd)
	useCmd.AddCommand(useDeleteCmd)

	useAddCmd.Flags().StringVar(&useAddBucket, "bucket", "", "Bucket name")
	useAddCmd.Flags().StringVar(&useAddRegion, "region", "", "AWS region")
	useAddCmd.Flags().StringVar(&useAddDist, "distribution-id", "", "CloudFront distribution id")
	useAddCmd.Flags().StringVar(&useAddBuildDir, "build-dir", "", "Build-output directory")
	useAddCmd.Flags().StringVar(&useAddProfile, "profile-name", "", "AWS profile name")
	useAddCmd.Flags().StringVar(&useAddSSMPrefix, "ssm-prefix", "", "SSM parameter prefix for provisioning outputs")
	_ = useAddCmd.MarkFlagRequired("bucket")
}

func runUse(cmd *cobra.Command, args []string) error {
	// No argument: pick interactively
	if len(args) == 0 {
		contexts, current, err := config.ListContexts()
		if err != nil {
			return err
		}
		if len(contexts) == 0 {
			fmt.Println("No contexts configured. Add one with:")
			fmt.Println("  stratus use add prod --bucket <bucket> --region <region>")
			return nil
		}

		selected, err := ui.SelectContext(contexts, current)
		if err != nil {
			return err
		}
		if err := config.SetCurrentContext(selected); err != nil {
			return err
		}
		fmt.Printf("Switched to context %s\n", ui.HeaderStyle.Render(selected))
		return nil
	}

	name := args[0]
	if err := config.SetCurrentContext(name); err != nil {
		// If the context doesn't exist, show what is available
		contexts, _, listErr := config.ListContexts()
		if listErr != nil || len(contexts) == 0 {
			return err
		}
		fmt.Printf("Context %q not found. Available contexts:\n", name)
		for ctxName := range contexts {
			fmt.Printf("  %s\n", ctxName)
		}
		return err
	}

	fmt.Printf("Switched to context %s\n", ui.HeaderStyle.Render(name))
	return nil
}

func runUseAdd(cmd *cobra.Command, args []string) error {
	name := args[0]

	err := config.AddContext(name, &config.Context{
		Bucket:         useAddBucket,
		Region:         useAddRegion,
		DistributionID: useAddDist,
		BuildDir:       useAddBuildDir,
		Profile:        useAddProfile,
		SSMPrefix:      useAddSSMPrefix,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added context %s (bucket %s)\n", ui.HeaderStyle.Render(name), useAddBucket)
	fmt.Printf("Switch to it with: stratus use %s\n", name)
	return nil
}

func runUseDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	if err := config.DeleteContext(name); err != nil {
		return err
	}

	fmt.Printf("Deleted context %s\n", name)
	return nil
}
