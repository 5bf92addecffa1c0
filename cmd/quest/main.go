// Package main is the entry point for the quest CLI
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/quest-chronicles/internal/config"
)

var (
	cfg *config.Config

	flagSaveDir   string
	flagStore     string
	flagRedisAddr string
	flagDataDir   string
	flagLogLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "quest",
	Short: "Quest Chronicles",
	Long:  `Quest Chronicles is a single-player text RPG: create a hero, shop, fight and complete quests.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		applyFlags(cmd, loaded)
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: loaded.SlogLevel(),
		})))
		cfg = loaded
		return nil
	},
	SilenceUsage: true,
}

// applyFlags overrides loaded settings with the flags set on the command line
func applyFlags(cmd *cobra.Command, loaded *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("save-dir") {
		loaded.SaveDir = flagSaveDir
	}
	if flags.Changed("store") {
		loaded.Store = strings.ToLower(flagStore)
	}
	if flags.Changed("redis-addr") {
		loaded.RedisAddr = flagRedisAddr
	}
	if flags.Changed("data-dir") {
		loaded.DataDir = flagDataDir
	}
	if flags.Changed("log-level") {
		loaded.LogLevel = strings.ToLower(flagLogLevel)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagSaveDir, "save-dir", config.DefaultSaveDir, "directory for save files")
	pf.StringVar(&flagStore, "store", config.StoreFile, "character store: file or redis")
	pf.StringVar(&flagRedisAddr, "redis-addr", config.DefaultRedisAddr, "redis address")
	pf.StringVar(&flagDataDir, "data-dir", "", "directory with items.yaml and quests.yaml")
	pf.StringVar(&flagLogLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(charactersCmd)
}
