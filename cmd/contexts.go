package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vietdv277/stratus/internal/config"
	"github.com/vietdv277/stratus/internal/ui"
)

var contextsCmd = &cobra.Command{
	Use:     "contexts",
	Aliases: []string{"ctx"},
	Short:   "List all configured contexts",
	Long: `List all configured site contexts.

The current active context is marked with an asterisk (*).

Examples:
  stratus contexts
  stratus ctx`,
	RunE: runContexts,
}

func init() {
	rootCmd.AddCommand(contextsCmd)
}

func runContexts(cmd *cobra.Command, args []string) error {
	contexts, current, err := config.ListContexts()
	if err != nil {
		return fmt.Errorf("failed to list contexts: %w", err)
	}

	if len(contexts) == 0 {
		fmt.Println("No contexts configured.")
		fmt.Println()
		fmt.Println("Add a context with:")
		fmt.Println("  stratus use add prod --bucket <bucket> --region <region>")
		return nil
	}

	// Sort context names
	names := make([]string, 0, len(contexts))
	for name := range contexts {
		names = append(names, name)
	}
	sort.Strings(names)

	// Print header
	fmt.Println()
	fmt.Printf("  %-20s  %-28s  %-16s  %-16s\n",
		ui.HeaderStyle.Render("CONTEXT"),
		ui.HeaderStyle.Render("BUCKET"),
		ui.HeaderStyle.Render("REGION"),
		ui.HeaderStyle.Render("DISTRIBUTION"))
	fmt.Println(ui.MutedStyle.Render("  " + strings.Repeat("─", 86)))

	for _, name := range names {
		ctx := contexts[name]

		marker := " "
		nameText := name
		if name == current {
			marker = "*"
			nameText = ui.OKStyle.Render(name)
		} else {
			nameText = ui.KeyStyle.Render(name)
		}

		region := ctx.Region
		if region == "" {
			region = "-"
		}
		dist := ctx.DistributionID
		if dist == "" {
			dist = "-"
		}

		fmt.Printf("%s %-20s  %-28s  %-16s  %-16s\n",
			marker,
			nameText,
			ui.BucketStyle.Render(fmt.Sprintf("%-28s", ctx.Bucket)),
			region,
			ui.MutedStyle.Render(dist))
	}

	fmt.Println()
	return nil
}
