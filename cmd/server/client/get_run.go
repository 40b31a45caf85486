package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	runID string
)

var getRunCmd = &cobra.Command{
	Use:   "get-run",
	Short: "Get a stored run by ID",
	RunE:  runGetRun,
}

func init() {
	getRunCmd.Flags().StringVar(&runID, "run-id", "", "Run ID (required)")
	_ = getRunCmd.MarkFlagRequired("run-id") // nolint:errcheck // safe to ignore in init
}

func runGetRun(cmd *cobra.Command, _ []string) error {
	req, err := newRequest(map[string]any{"runId": runID})
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

	resp, err := client.GetRun(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}
	return printResponse(cmd, resp)
}
