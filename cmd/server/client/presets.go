package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	presetName  string
	presetParty string
	overwrite   bool
	presetSeed  uint64
)

var savePresetCmd = &cobra.Command{
	Use:   "save-preset",
	Short: "Store a party file under a name",
	RunE:  runSavePreset,
}

var simulatePresetCmd = &cobra.Command{
	Use:   "simulate-preset",
	Short: "Run a stored party",
	RunE:  runSimulatePreset,
}

func init() {
	savePresetCmd.Flags().StringVar(&presetName, "name", "", "Preset name (required)")
	savePresetCmd.Flags().StringVar(&presetParty, "party", "", "Exported party file (required)")
	savePresetCmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing preset")
	_ = savePresetCmd.MarkFlagRequired("name")  // nolint:errcheck // safe to ignore in init
	_ = savePresetCmd.MarkFlagRequired("party") // nolint:errcheck // safe to ignore in init

	simulatePresetCmd.Flags().StringVar(&presetName, "name", "", "Preset name (required)")
	simulatePresetCmd.Flags().Uint64Var(&presetSeed, "seed", 0, "Random seed (server default when unset)")
	_ = simulatePresetCmd.MarkFlagRequired("name") // nolint:errcheck // safe to ignore in init
}

func runSavePreset(cmd *cobra.Command, _ []string) error {
	party, err := partyValue(presetParty)
	if err != nil {
		return err
	}
	req, err := newRequest(map[string]any{
		"name":      presetName,
		"party":     party,
		"overwrite": overwrite,
	})
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

	resp, err := client.SavePreset(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to save preset: %w", err)
	}
	return printResponse(cmd, resp)
}

func runSimulatePreset(cmd *cobra.Command, _ []string) error {
	fields := map[string]any{"name": presetName}
	if cmd.Flags().Changed("seed") {
		fields["seed"] = strconv.FormatUint(presetSeed, 10)
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

	resp, err := client.SimulatePreset(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to simulate preset: %w", err)
	}
	return printResponse(cmd, resp)
}
