package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	partyPath string
	seed      uint64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a party on the server",
	Long:  `Send an exported party file to the server and print the stored run.`,
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&partyPath, "party", "", "Exported party file (required)")
	simulateCmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (server default when unset)")
	_ = simulateCmd.MarkFlagRequired("party") // nolint:errcheck // safe to ignore in init
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	party, err := partyValue(partyPath)
	if err != nil {
		return err
	}
	fields := map[string]any{"party": party}
	if cmd.Flags().Changed("seed") {
		fields["seed"] = strconv.FormatUint(seed, 10)
	}
	req, err := newRequest(fields)
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

	resp, err := client.Simulate(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to simulate: %w", err)
	}
	return printResponse(cmd, resp)
}
