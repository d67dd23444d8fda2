// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 PassForge Contributors

package main

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/passforge/passforge/internal/clipboard"
	"github.com/passforge/passforge/internal/config"
	"github.com/passforge/passforge/internal/export"
	"github.com/passforge/passforge/internal/password"
	"github.com/passforge/passforge/internal/strength"
	"github.com/passforge/passforge/internal/xdg"
)

// NewMenuCmd creates the menu subcommand.
func NewMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive menu",
		Long: `Run the interactive text menu: generate passwords, check strength,
edit the working settings, export the last batch and copy to the clipboard.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(nil)
			if err != nil {
				return err
			}
			return newMenuSession(cmd.InOrStdin(), cmd.OutOrStdout(), cfg).run()
		},
	}
}

// menuSession drives the interactive loop. It owns a single mutable working
// copy of the settings; every core call receives that copy by value.
type menuSession struct {
	scanner   *bufio.Scanner
	out       io.Writer
	cfg       config.Config
	gen       *password.Generator
	lastBatch []string

	// Swapped in tests.
	copyFn   func(text string) error
	exportFn func(path string, b export.Batch, version string) error
}

func newMenuSession(in io.Reader, out io.Writer, cfg config.Config) *menuSession {
	return &menuSession{
		scanner:  bufio.NewScanner(in),
		out:      out,
		cfg:      cfg,
		gen:      password.NewGenerator(),
		copyFn:   clipboard.Copy,
		exportFn: export.WriteFile,
	}
}

// run displays the menu until the user quits or input ends.
func (s *menuSession) run() error {
	fmt.Fprintln(s.out, "PassForge password generator")
	for {
		s.printMenu()
		choice, ok := s.readLine("> ")
		if !ok {
			return nil
		}
		switch strings.TrimSpace(choice) {
		case "1":
			s.generateOne()
		case "2":
			s.generateMany()
		case "3":
			s.checkStrength()
		case "4":
			s.editSettings()
		case "5":
			s.exportBatch()
		case "6":
			s.copyLast()
		case "0", "q":
			fmt.Fprintln(s.out, "Bye.")
			return nil
		default:
			fmt.Fprintln(s.out, "Unknown choice.")
		}
	}
}

func (s *menuSession) printMenu() {
	fmt.Fprintf(s.out, `
  1) Generate a password
  2) Generate multiple passwords
  3) Check password strength
  4) Settings (%s)
  5) Export last batch to file
  6) Copy last password to clipboard
  0) Quit
`, s.cfg.Summary())
}

func (s *menuSession) generateOne() {
	if err := s.cfg.Validate(); err != nil {
		fmt.Fprintf(s.out, "Invalid settings: %v\n", err)
		return
	}
	pw, err := s.gen.Generate(s.cfg.Settings())
	if err != nil {
		fmt.Fprintf(s.out, "Generation failed: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "%s  %s\n", pw, ratingBadge(strength.Evaluate(pw).Rating))
	s.lastBatch = []string{pw}
}

func (s *menuSession) generateMany() {
	if err := s.cfg.Validate(); err != nil {
		fmt.Fprintf(s.out, "Invalid settings: %v\n", err)
		return
	}
	count, ok := s.readInt(fmt.Sprintf("How many (1-%d)", config.MaxCount), s.cfg.Count, 1, config.MaxCount)
	if !ok {
		return
	}
	passwords, err := s.gen.GenerateMultiple(s.cfg.Settings(), count)
	if err != nil {
		fmt.Fprintf(s.out, "Generation failed: %v\n", err)
		return
	}
	for i, pw := range passwords {
		fmt.Fprintf(s.out, "%2d. %s  %s\n", i+1, pw, ratingBadge(strength.Evaluate(pw).Rating))
	}
	s.lastBatch = passwords
}

func (s *menuSession) checkStrength() {
	pw, ok := s.readLine("Password to check: ")
	if !ok || pw == "" {
		fmt.Fprintln(s.out, "Nothing to check.")
		return
	}
	printEvaluation(s.out, strength.Evaluate(pw))
}

// editSettings prompts for every field; empty input keeps the current value.
// The working copy is only replaced when the edited result validates.
func (s *menuSession) editSettings() {
	edited := s.cfg

	if v, ok := s.readInt(fmt.Sprintf("Length (%d-%d)", config.MinLength, config.MaxLength),
		edited.Length, config.MinLength, config.MaxLength); ok {
		edited.Length = v
	} else {
		return
	}
	edited.Lowercase = s.readBool("Include lowercase", edited.Lowercase)
	edited.Uppercase = s.readBool("Include uppercase", edited.Uppercase)
	edited.Digits = s.readBool("Include digits", edited.Digits)
	edited.Special = s.readBool("Include special characters", edited.Special)
	edited.ReadableOnly = s.readBool("Readable characters only", edited.ReadableOnly)
	edited.ExcludeAmbiguous = s.readBool("Exclude ambiguous characters", edited.ExcludeAmbiguous)
	if v, ok := s.readInt(fmt.Sprintf("Minimum digits (0-%d)", config.MaxMinimum),
		edited.MinDigits, 0, config.MaxMinimum); ok {
		edited.MinDigits = v
	} else {
		return
	}
	if v, ok := s.readInt(fmt.Sprintf("Minimum special (0-%d)", config.MaxMinimum),
		edited.MinSpecial, 0, config.MaxMinimum); ok {
		edited.MinSpecial = v
	} else {
		return
	}

	if err := edited.Validate(); err != nil {
		fmt.Fprintf(s.out, "Settings unchanged: %v\n", err)
		return
	}
	s.cfg = edited
	fmt.Fprintf(s.out, "Settings saved: %s\n", s.cfg.Summary())
}

func (s *menuSession) exportBatch() {
	if len(s.lastBatch) == 0 {
		fmt.Fprintln(s.out, "Nothing to export yet, generate first.")
		return
	}
	batch := export.NewBatch(s.lastBatch, s.cfg)

	defaultPath := filepath.Join(xdg.ExportsDir(), batch.FileName())
	path, ok := s.readLine(fmt.Sprintf("Export file [%s]: ", defaultPath))
	if !ok {
		return
	}
	path = strings.TrimSpace(path)
	if path == "" {
		if err := xdg.EnsureDir(xdg.ExportsDir()); err != nil {
			fmt.Fprintf(s.out, "Export failed: %v\n", err)
			return
		}
		path = defaultPath
	}

	if err := s.exportFn(path, batch, version); err != nil {
		fmt.Fprintf(s.out, "Export failed: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Exported %d password(s) to %s\n", len(s.lastBatch), path)
}

func (s *menuSession) copyLast() {
	if len(s.lastBatch) == 0 {
		fmt.Fprintln(s.out, "Nothing to copy yet, generate first.")
		return
	}
	pw := s.lastBatch[len(s.lastBatch)-1]
	if err := s.copyFn(pw); err != nil {
		// Best effort: degrade to printing.
		fmt.Fprintf(s.out, "Clipboard unavailable, password: %s\n", pw)
		return
	}
	fmt.Fprintln(s.out, "Copied to clipboard.")
}

// readLine prints prompt and reads one line. ok is false when input ended.
func (s *menuSession) readLine(prompt string) (line string, ok bool) {
	fmt.Fprint(s.out, prompt)
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

// readInt prompts until it reads an integer within [min, max]. Empty input
// keeps def. ok is false when input ended.
func (s *menuSession) readInt(label string, def, min, max int) (value int, ok bool) {
	for {
		line, ok := s.readLine(fmt.Sprintf("%s [%d]: ", label, def))
		if !ok {
			return 0, false
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return def, true
		}
		v, err := strconv.Atoi(line)
		if err != nil || v < min || v > max {
			fmt.Fprintf(s.out, "Enter a number between %d and %d.\n", min, max)
			continue
		}
		return v, true
	}
}

// readBool prompts for y/n; empty or unrecognized input keeps def.
func (s *menuSession) readBool(label string, def bool) bool {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	line, ok := s.readLine(fmt.Sprintf("%s [%s]: ", label, hint))
	if !ok {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return def
	}
}
