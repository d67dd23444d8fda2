// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 PassForge Contributors

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args against fresh buffers.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	// Keep the default XDG config out of test runs.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	configFile = ""
	color.NoColor = true

	cmd := NewRootCmd()
	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	cmd.SetOut(outBuf)
	cmd.SetErr(errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestGenerateCommand(t *testing.T) {
	t.Run("prints one password with a rating badge", func(t *testing.T) {
		stdout, _, err := execute(t, "generate")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
		require.Len(t, lines, 1)
		fields := strings.SplitN(lines[0], "  ", 2)
		require.Len(t, fields, 2)
		assert.Len(t, fields[0], 16, "default length is 16")
		assert.True(t, strings.HasPrefix(fields[1], "("), "badge missing: %q", lines[0])
	})

	t.Run("quiet prints passwords only", func(t *testing.T) {
		stdout, _, err := execute(t, "generate", "--length", "12", "--count", "3", "--quiet")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
		require.Len(t, lines, 3)
		for _, line := range lines {
			assert.Len(t, line, 12)
		}
	})

	t.Run("rejects out-of-bounds length", func(t *testing.T) {
		_, _, err := execute(t, "generate", "--length", "3")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "length")
	})

	t.Run("rejects out-of-bounds count", func(t *testing.T) {
		_, _, err := execute(t, "generate", "--count", "51")
		require.Error(t, err)
	})

	t.Run("rejects empty category selection", func(t *testing.T) {
		_, _, err := execute(t, "generate",
			"--lowercase=false", "--uppercase=false", "--digits=false", "--special=false",
			"--min-digits", "0", "--min-special", "0")
		require.Error(t, err)
	})

	t.Run("writes export file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "batch.txt")
		_, _, err := execute(t, "generate", "--count", "2", "--out", path)
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "# passforge")
		assert.Contains(t, string(content), "1. ")
		assert.Contains(t, string(content), "2. ")
	})

	t.Run("reads settings from config file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("length: 24\ncount: 2\n"), 0o600))

		stdout, _, err := execute(t, "--config", path, "generate", "--quiet")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
		require.Len(t, lines, 2)
		assert.Len(t, lines[0], 24)
	})
}

func TestCheckCommand(t *testing.T) {
	t.Run("scores the argument", func(t *testing.T) {
		stdout, _, err := execute(t, "check", "aB3$fG7!jK2@")
		require.NoError(t, err)
		assert.Contains(t, stdout, "Score:  10/11")
		assert.Contains(t, stdout, "strong")
		assert.Contains(t, stdout, "length: good")
	})

	t.Run("reads from stdin when no argument", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		configFile = ""
		color.NoColor = true

		cmd := NewRootCmd()
		outBuf := new(bytes.Buffer)
		cmd.SetOut(outBuf)
		cmd.SetErr(new(bytes.Buffer))
		cmd.SetIn(strings.NewReader("aaaaaaaa\n"))
		cmd.SetArgs([]string{"check"})

		require.NoError(t, cmd.Execute())
		assert.Contains(t, outBuf.String(), "very weak")
	})

	t.Run("rejects empty password", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		configFile = ""

		cmd := NewRootCmd()
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetErr(new(bytes.Buffer))
		cmd.SetIn(strings.NewReader("\n"))
		cmd.SetArgs([]string{"check"})

		assert.Error(t, cmd.Execute())
	})
}
