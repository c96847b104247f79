// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Command i18nkeylint checks the translation keys used by Go packages against
// translation dictionaries.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"codeberg.org/pixivfe/i18nkeylint/config"
)

// errFindings makes the process exit with status 1 without an error message.
var errFindings = errors.New("translation key problems found")

var errInvalidColor = errors.New("invalid --color value")

// opts holds the options resolved by setup.
var opts *config.Options

var rootCmd = &cobra.Command{
	Use:   "i18nkeylint",
	Short: "Check translation keys used in Go packages",
	Long: `i18nkeylint reports translation function calls whose key is not a constant
string or is missing from the configured translation dictionaries.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "path to the YAML configuration file")
	pf.String("log-level", "warn", "log level (debug|info|warn|error)")
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("print-config", false, "print the effective configuration before running")
	config.RegisterPFlags(pf, config.Default())

	rootCmd.AddCommand(checkCmd, lookupCmd, keysCmd, versionCmd)
}

func main() {
	config.SetDefaultLogger()

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errFindings) {
			log.Error().Err(err).Msg("i18nkeylint failed")
		}

		os.Exit(1)
	}
}

// setup configures logging and output colours, then resolves opts from the
// config file, environment and flags.
func setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	level, _ := flags.GetString("log-level")
	if err := config.SetupLogging(level, os.Stderr); err != nil {
		return err
	}

	mode, _ := flags.GetString("color")
	switch mode {
	case "auto":
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("%w: %q", errInvalidColor, mode)
	}

	configPath, _ := flags.GetString("config")

	o, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if err := o.ApplyPFlags(flags); err != nil {
		return fmt.Errorf("error applying flags: %w", err)
	}

	if err := o.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if printConfig, _ := flags.GetBool("print-config"); printConfig {
		o.Print(cmd.OutOrStdout())
	}

	opts = o

	return nil
}
