// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 PassForge Contributors

package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/passforge/passforge/internal/strength"
)

// NewCheckCmd creates the check subcommand.
func NewCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [password]",
		Short: "Score the strength of a password",
		Long: `Score a password on length, character variety and repetition.
With no argument the password is read from stdin with echo disabled.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pw string
			if len(args) == 1 {
				pw = args[0]
			} else {
				read, err := promptPassword(cmd)
				if err != nil {
					return err
				}
				pw = read
			}
			if pw == "" {
				return oops.Code("CHECK_EMPTY_PASSWORD").Errorf("password cannot be empty")
			}

			printEvaluation(cmd.OutOrStdout(), strength.Evaluate(pw))
			return nil
		},
	}
}

// promptPassword reads a password without echo when stdin is a terminal,
// falling back to a plain line read otherwise (piped input, tests).
func promptPassword(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()
	fmt.Fprint(out, "Password: ")

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", oops.Code("CHECK_READ_FAILED").Wrap(err)
		}
		return string(b), nil
	}

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", oops.Code("CHECK_READ_FAILED").Wrap(err)
		}
		return "", nil
	}
	return scanner.Text(), nil
}
