package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	listLimit int
)

var listRunsCmd = &cobra.Command{
	Use:   "list-runs",
	Short: "List recent runs, newest first",
	RunE:  runListRuns,
}

func init() {
	listRunsCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum number of runs")
}

func runListRuns(cmd *cobra.Command, _ []string) error {
	req, err := newRequest(map[string]any{"limit": listLimit})
	if err != nil {
		return err
	}

	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListRuns(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	return printResponse(cmd, resp)
}
