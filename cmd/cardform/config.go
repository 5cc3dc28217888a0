package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/cardform/internal/config"
	"github.com/muurk/cardform/internal/ui"
)

var (
	forceInit bool
	assumeYes bool
)

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)

	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")
	configInitCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask before overwriting")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage cardform preferences",
	Long: `Manage the preferences file.

Only display and logging preferences are stored. Card details are never
written to disk.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Example: `  # Create the default config file
  cardform config init

  # Replace an existing file without prompting
  cardform config init --force --yes`,
	RunE: runConfigInit,
}

func resolvedConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := resolvedConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	p := ui.NewPrinter(cmd.OutOrStdout())

	if _, statErr := os.Stat(path); statErr == nil {
		if !forceInit {
			p.PrintResult(ui.NewWarningResult("Config file already exists",
				ui.Param{Key: "Path", Value: path},
				ui.Param{Key: "Hint", Value: "use --force to overwrite"},
			))
			return nil
		}
		if !assumeYes && !ui.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "OVERWRITE CONFIG",
			[]string{"Your current preferences at " + path + " will be replaced with defaults"}, "yes") {
			return nil
		}
		if err := config.NewPreferences().Save(path); err != nil {
			return err
		}
	} else if _, err := config.CreateDefaultConfig(path); err != nil {
		return err
	}

	p.PrintResult(ui.NewSuccessResult("Config file written", ui.Param{Key: "Path", Value: path}))
	return nil
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective preferences",
	Long: `Print the preferences in effect, after defaults, the config file and
CARDFORM_* environment variables have been applied.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := prefs.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolvedConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}
