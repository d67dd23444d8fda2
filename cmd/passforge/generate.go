// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 PassForge Contributors

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/passforge/passforge/internal/clipboard"
	"github.com/passforge/passforge/internal/config"
	"github.com/passforge/passforge/internal/export"
	"github.com/passforge/passforge/internal/logging"
	"github.com/passforge/passforge/internal/password"
	"github.com/passforge/passforge/internal/strength"
)

// GenerateDeps holds injectable dependencies for the generate command.
// Nil fields fall back to the real implementations.
type GenerateDeps struct {
	Generator     *password.Generator
	ClipboardCopy func(string) error
	ExportFile    func(path string, b export.Batch, version string) error
}

// NewGenerateCmd creates the generate subcommand.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more passwords",
		Long: `Generate passwords under the configured composition rules and
print each one with its strength rating.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, nil)
		},
	}

	def := config.Default()
	cmd.Flags().Int("length", def.Length,
		fmt.Sprintf("password length (%d-%d)", config.MinLength, config.MaxLength))
	cmd.Flags().Bool("lowercase", def.Lowercase, "include lowercase letters")
	cmd.Flags().Bool("uppercase", def.Uppercase, "include uppercase letters")
	cmd.Flags().Bool("digits", def.Digits, "include digits")
	cmd.Flags().Bool("special", def.Special, "include special characters")
	cmd.Flags().Bool("readable", def.ReadableOnly, "restrict classes to unambiguous subsets")
	cmd.Flags().Bool("exclude-ambiguous", def.ExcludeAmbiguous,
		"strip easily confused characters (0/O, l/1/I, ...)")
	cmd.Flags().Int("min-digits", def.MinDigits,
		fmt.Sprintf("minimum digit count (0-%d)", config.MaxMinimum))
	cmd.Flags().Int("min-special", def.MinSpecial,
		fmt.Sprintf("minimum special character count (0-%d)", config.MaxMinimum))
	cmd.Flags().Int("count", def.Count,
		fmt.Sprintf("number of passwords to generate (1-%d)", config.MaxCount))
	cmd.Flags().String("out", "", "write the passwords to this file")
	cmd.Flags().Bool("copy", false, "copy the first password to the clipboard")
	cmd.Flags().Bool("quiet", false, "print passwords only, without strength labels")

	return cmd
}

// runGenerate executes the generate command with injectable dependencies.
// If deps is nil, default implementations are used.
func runGenerate(cmd *cobra.Command, deps *GenerateDeps) error {
	if deps == nil {
		deps = &GenerateDeps{}
	}
	if deps.Generator == nil {
		deps.Generator = password.NewGenerator()
	}
	if deps.ClipboardCopy == nil {
		deps.ClipboardCopy = clipboard.Copy
	}
	if deps.ExportFile == nil {
		deps.ExportFile = export.WriteFile
	}

	logger := logging.Setup("passforge", version, logFormat, cmd.ErrOrStderr())

	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	passwords, err := deps.Generator.GenerateMultiple(cfg.Settings(), cfg.Count)
	if err != nil {
		return err
	}

	quiet, _ := cmd.Flags().GetBool("quiet")
	out := cmd.OutOrStdout()
	for _, pw := range passwords {
		if quiet {
			fmt.Fprintln(out, pw)
			continue
		}
		fmt.Fprintf(out, "%s  %s\n", pw, ratingBadge(strength.Evaluate(pw).Rating))
	}

	if path, _ := cmd.Flags().GetString("out"); path != "" {
		batch := export.NewBatch(passwords, cfg)
		if err := deps.ExportFile(path, batch, version); err != nil {
			return err
		}
		logger.Info("passwords exported", "path", path, "count", len(passwords))
	}

	if copyRequested, _ := cmd.Flags().GetBool("copy"); copyRequested {
		if err := deps.ClipboardCopy(passwords[0]); err != nil {
			logger.Warn("clipboard unavailable, password printed above", "error", err)
		} else {
			logger.Info("first password copied to clipboard")
		}
	}

	return nil
}
