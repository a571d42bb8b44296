// File: cmd/s3ls/root.go
package main

import (
	"context"
	"fmt"
	"io"
	"s3ls/pkg/storage"

	"github.com/spf13/cobra"
)

func newRootCmd(app *appContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "s3ls [bucket[/prefix]]",
		Short: "s3ls lists S3 buckets and the folders and files under a bucket prefix.",
		Long: `Without arguments, lists every bucket visible to the current AWS credentials.
With a path of the form 'bucket' or 'bucket/prefix', lists the folders and files
directly under that prefix. Only the first page returned by S3 is shown.

Credentials and region come from the standard AWS environment and config files.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runListBuckets(cmd, app)
			}
			return runListObjects(cmd, app, args[0])
		},
	}
}

func runListBuckets(cmd *cobra.Command, app *appContainer) error {
	buckets, err := app.StorageService.ListBuckets(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), app.StorageFormatter.FormatBucketList(buckets))
	return nil
}

func runListObjects(cmd *cobra.Command, app *appContainer, path string) error {
	req := storage.ParsePath(path)

	objects, err := app.StorageService.ListObjects(cmd.Context(), req)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), app.StorageFormatter.FormatObjectList(objects))
	return nil
}

// Runs the CLI and returns the process exit code.
// The table is only written after the listing fully succeeded; errors go to stderr.
func Execute(ctx context.Context, app *appContainer, args []string, stdout, stderr io.Writer) int {
	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}

	rootCmd := newRootCmd(app)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}
