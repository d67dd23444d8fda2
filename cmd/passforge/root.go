// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 PassForge Contributors

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/passforge/passforge/internal/config"
	"github.com/passforge/passforge/internal/xdg"
)

// Global flags available to all subcommands.
var (
	configFile string
	logFormat  string
)

// NewRootCmd creates the root command for the passforge CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passforge",
		Short: "PassForge - password generation and strength checking",
		Long: `PassForge generates randomized passwords under configurable
composition rules and scores password strength with a heuristic evaluator.`,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file path (default: $XDG_CONFIG_HOME/passforge/config.yaml)")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (json or text)")

	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewMenuCmd())

	return cmd
}

// loadConfig resolves the config file and layers flag overrides on top.
// When no --config was given, the default XDG location is used only if the
// file actually exists.
func loadConfig(flags *pflag.FlagSet) (config.Config, error) {
	path := configFile
	if path == "" {
		if candidate := xdg.ConfigFile(); fileExists(candidate) {
			path = candidate
		}
	}
	return config.Load(path, flags)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
