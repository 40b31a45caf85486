package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
	"github.com/KirkDiggler/rpg-combat-sim/internal/orchestrators/encounter"
	"github.com/KirkDiggler/rpg-combat-sim/internal/partyconfig"
	"github.com/KirkDiggler/rpg-combat-sim/internal/repositories/encounters"
)

var (
	partyPath  string
	seedFlag   uint64
	roundsFlag int
	jsonOutput bool
	showLog    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a party locally and print the result",
	Long: `Run the party in an exported party file without a server. The run is stored
like a server run, in Redis when REDIS_ADDR is set.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&partyPath, "party", "", "Exported party file (required)")
	simulateCmd.Flags().Uint64Var(&seedFlag, "seed", 0, "Random seed (overrides DEFAULT_SEED)")
	simulateCmd.Flags().IntVar(&roundsFlag, "rounds", 0, "Override the encounter's round budget")
	simulateCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the full run as JSON")
	simulateCmd.Flags().BoolVar(&showLog, "log", false, "Print the combat log")
	_ = simulateCmd.MarkFlagRequired("party") // nolint:errcheck // safe to ignore in init
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	party, err := readParty(partyPath)
	if err != nil {
		return err
	}
	if roundsFlag > 0 {
		party.Encounter.Rounds = roundsFlag
	}

	input := &encounter.SimulateInput{Party: party}
	if cmd.Flags().Changed("seed") {
		input.Seed = &seedFlag
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	svc, cleanup, err := newService(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.Simulate(ctx, input)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out.Run)
	}
	printRun(w, out.Run, showLog)
	return nil
}

func readParty(path string) (combat.PartyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return combat.PartyConfig{}, fmt.Errorf("failed to read party file: %w", err)
	}
	return partyconfig.Import(string(data))
}

func printRun(w io.Writer, run *encounters.Run, withLog bool) {
	res := run.Result
	fmt.Fprintf(w, "Run %s (seed %d)\n", run.ID, run.Seed)
	fmt.Fprintf(w, "Time: %d ticks\n\n", res.Ticks)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Character\tDamage\tHealing\tShield\tHealed\t")
	for _, b := range res.Breakdown {
		name := b.Name
		if b.Spirit {
			name += " (spirit)"
		}
		fmt.Fprintf(tw, "%s\t%.0f\t%.0f\t%.0f\t%.0f\t\n", name, b.Damage, b.Healing, b.Shield, b.HealingReceived)
	}
	fmt.Fprintf(tw, "Total\t%.0f\t%.0f\t%.0f\t\t\n", res.TotalDamage, res.TotalHealing, res.TotalShield)
	_ = tw.Flush()

	fmt.Fprintf(w, "\nHealing spread (CV): %.3f\n", res.HealingCV)
	if len(res.EventCounts) > 0 {
		fmt.Fprintf(w, "Events: %v\n", res.EventCounts)
	}

	if !withLog {
		return
	}
	fmt.Fprintln(w, "\nLog:")
	for _, e := range res.Log {
		fmt.Fprintf(w, "  [%4d] %-22s %-32s", e.Tick, e.Actor, e.Action)
		if e.Damage > 0 {
			fmt.Fprintf(w, " dmg=%.0f", e.Damage)
		}
		if e.Healing > 0 {
			fmt.Fprintf(w, " heal=%.0f", e.Healing)
		}
		if e.Shield > 0 {
			fmt.Fprintf(w, " shield=%.0f", e.Shield)
		}
		fmt.Fprintln(w)
	}
}
