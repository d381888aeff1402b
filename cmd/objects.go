package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/stratus/internal/aws"
	"github.com/vietdv277/stratus/internal/ui"
)

var objectsCmd = &cobra.Command{
	Use:     "objects [prefix]",
	Aliases: []string{"ls"},
	Short:   "List the objects the site bucket currently serves",
	Long: `List the bucket's objects, optionally filtered by key prefix.

Useful for checking what the last deploy left behind.

Examples:
  stratus objects
  stratus objects assets/
  stratus objects --bucket myapp-prod-site`,
	Args: cobra.MaximumNArgs(1),
	RunE: runObjects,
}

var objectsBucket string

func init() {
	rootCmd.AddCommand(objectsCmd)

	objectsCmd.Flags().StringVar(&objectsBucket, "bucket", "", "Bucket name")
}

func runObjects(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings()
	if err != nil {
		return err
	}
	if objectsBucket != "" {
		s.Bucket = objectsBucket
	}

	prefix := ""
	if len(args) > 0 {
		prefix = args[0]
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

	storage := aws.NewStorageProvider(client)
	objects, err := storage.ListObjects(ctx, s.Bucket, prefix)
	if err != nil {
		return err
	}

	if len(objects) == 0 {
		fmt.Printf("Bucket %s is empty", s.Bucket)
		if prefix != "" {
			fmt.Printf(" under prefix %q", prefix)
		}
		fmt.Println()
		return nil
	}

	ui.PrintObjectTable(objects)
	return nil
}
