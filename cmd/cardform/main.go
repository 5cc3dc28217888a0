// Cardform is an interactive payment card entry form for the terminal.
//
// It validates card details as they are typed and mirrors them onto a card
// preview. Non-interactive commands check or preview a card from flags.
// Card details are never stored or sent anywhere.
//
// Usage:
//
//	cardform [command] [flags]
//
// Running without arguments launches the interactive form.
// See 'cardform --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/cardform/internal/config"
	"github.com/muurk/cardform/internal/logging"
	"github.com/muurk/cardform/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	configPath string
	logLevel   string
)

// prefs is loaded before any command runs.
var prefs = config.NewPreferences()

var rootCmd = &cobra.Command{
	Use:   "cardform",
	Short: "Payment card entry form",
	Long: `An interactive payment card entry form for the terminal.

Card details are validated as you type and shown on a live card preview
that flips over while the security code is being entered.

If no command is specified, the interactive form will launch automatically.`,
	Version:           version.Version,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the form when no subcommand provided
		return runForm(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is $XDG_CONFIG_HOME/cardform/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides config")

	rootCmd.AddCommand(versionCmd)
}

// setup loads preferences and starts logging to stderr. The form command
// re-targets logging to a file once it knows it owns the terminal.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	prefs = loaded
	if logLevel != "" {
		prefs.LogLevel = logLevel
	}

	if err := logging.Initialize(prefs.LogLevel); err != nil {
		return err
	}
	logging.Debug("Configuration loaded")
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "cardform %s\n", version.Full())
	},
}
