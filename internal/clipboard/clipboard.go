// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 PassForge Contributors

// Package clipboard copies text to the system clipboard when a known
// clipboard tool is available. Integration is best-effort: callers are
// expected to fall back to printing when ErrUnavailable is returned.
package clipboard

import (
	"os/exec"
	"strings"

	"github.com/samber/oops"
)

// ErrUnavailable is returned when no clipboard tool is found in PATH.
var ErrUnavailable = oops.Code("CLIPBOARD_UNAVAILABLE").Errorf("no clipboard tool found")

// tools lists known clipboard writers in probe order. Text is always piped
// through stdin so it never appears in the process table.
var tools = [][]string{
	{"pbcopy"},
	{"wl-copy"},
	{"xclip", "-selection", "clipboard"},
	{"xsel", "--clipboard", "--input"},
	{"clip"},
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// Copy writes text to the system clipboard using the first available tool.
func Copy(text string) error {
	argv, err := findTool()
	if err != nil {
		return err
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(text)
	if out, err := cmd.CombinedOutput(); err != nil {
		return oops.Code("CLIPBOARD_COPY_FAILED").
			With("tool", argv[0]).
			With("output", string(out)).
			Wrap(err)
	}
	return nil
}

// findTool returns the argv of the first clipboard tool present in PATH.
func findTool() ([]string, error) {
	for _, argv := range tools {
		if _, err := lookPath(argv[0]); err == nil {
			return argv, nil
		}
	}
	return nil, ErrUnavailable
}
