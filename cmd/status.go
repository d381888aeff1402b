package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/stratus/internal/aws"
	"github.com/vietdv277/stratus/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current context, authentication, and distribution status",
	Long: `Display the resolved deployment settings, verify AWS authentication,
and report the distribution's deployment status when one is configured.

Settings missing locally are resolved from the SSM parameters a previous
provision run recorded.

Examples:
  stratus status`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings()
	if err != nil {
		return err
	}

	ctx := context.Background()
	client, err := newClient(ctx, s)
	if err != nil {
		return err
	}

	fillFromParameterStore(ctx, aws.NewParameterStore(client), s)

	fmt.Println("Current Status")
	fmt.Println(ui.MutedStyle.Render("─────────────────────────────────"))
	fmt.Println()

	if s.Context != "" {
		fmt.Printf("Context:       %s\n", ui.HeaderStyle.Render(s.Context))
	} else {
		fmt.Println("Context:       " + ui.MutedStyle.Render("(not set)"))
	}

	if s.Bucket != "" {
		fmt.Printf("Bucket:        %s\n", ui.BucketStyle.Render(s.Bucket))
	} else {
		fmt.Println("Bucket:        " + ui.MutedStyle.Render("(not set)"))
	}
	fmt.Printf("Region:        %s\n", s.Region)
	if s.Profile != "" {
		fmt.Printf("Profile:       %s\n", s.Profile)
	}
	fmt.Printf("Build dir:     %s\n", s.BuildDir)
	fmt.Println()

	// Try to get caller identity
	fmt.Print("Auth:          ")
	identity, err := client.GetCallerIdentity(ctx)
	if err != nil {
		fmt.Println(ui.FailStyle.Render("✗ Not authenticated"))
		fmt.Printf("               %s\n", ui.MutedStyle.Render(err.Error()))
		fmt.Println()
		fmt.Println("To authenticate:")
		if s.Profile != "" {
			fmt.Printf("  aws sso login --profile %s\n", s.Profile)
		} else {
			fmt.Println("  set AWS credentials or pass --profile")
		}
		return nil
	}
	fmt.Println(ui.OKStyle.Render("✓ Authenticated"))
	fmt.Printf("Account:       %s\n", identity.Account)
	fmt.Printf("Identity:      %s\n", ui.MutedStyle.Render(identity.Arn))

	if s.DistributionID == "" {
		fmt.Println()
		fmt.Println(ui.MutedStyle.Render("No distribution configured; deploys will skip cache invalidation"))
		return nil
	}

	dist, err := aws.NewCDNProvider(client).GetDistribution(ctx, s.DistributionID)
	if err != nil {
		fmt.Printf("Distribution:  %s %s\n", s.DistributionID, ui.FailStyle.Render("✗ "+err.Error()))
		return nil
	}

	fmt.Printf("Distribution:  %s (%s)\n", dist.ID, dist.DomainName)
	if dist.Status == "Deployed" {
		fmt.Printf("Status:        %s\n", ui.OKStyle.Render(dist.Status))
	} else {
		fmt.Printf("Status:        %s\n", ui.WarnStyle.Render(dist.Status))
	}

	return nil
}
