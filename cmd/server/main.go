// Package main is the entry point for the combat simulator server and CLI
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-combat-sim/cmd/server/client"
	"github.com/KirkDiggler/rpg-combat-sim/internal/config"
)

// cfg is loaded from the environment before any command runs; flags
// override it afterwards
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "rpg-combat-sim",
	Short: "Turn based combat simulator",
	Long: `rpg-combat-sim plays a configured party against an enemy group for a fixed
time budget and reports damage, healing and shielding per character.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: cfg.SlogLevel(),
		})))
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
