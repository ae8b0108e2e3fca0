package main

import (
	"fmt"
	"os"

	"github.com/seedforge/seedforge/internal/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	rootCmd = &cobra.Command{
		Use:   "seedforge",
		Short: "CLI for deterministic secret derivation",
		Long: "This CLI lets you derive mnemonics, passwords, keys and raw " +
			"entropy deterministically from a single master seed",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))
		},
		Version: formatVersion(),
	}
)

func init() {
	rootCmd.AddCommand(mnemonicCmd, validateCmd, xprvCmd, deriveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func formatVersion() string {
	return fmt.Sprintf(
		"\nVersion: %s\nCommit: %s\nDate: %s", version, commit, date,
	)
}
