// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 PassForge Contributors

// Package export writes generated passwords to plain-text report files.
package export

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/passforge/passforge/internal/config"
	"github.com/passforge/passforge/internal/strength"
)

// Batch couples generated passwords with the settings that produced them.
type Batch struct {
	ID        ulid.ULID
	CreatedAt time.Time
	Settings  config.Config
	Passwords []string
}

// NewBatch stamps passwords with a creation time and a ULID batch id.
func NewBatch(passwords []string, cfg config.Config) Batch {
	return Batch{
		ID:        ulid.Make(),
		CreatedAt: time.Now(),
		Settings:  cfg,
		Passwords: passwords,
	}
}

// FileName returns the default export file name for the batch.
func (b Batch) FileName() string {
	return fmt.Sprintf("passforge-%s.txt", b.ID)
}

// Write renders the batch to w: a commented header (tool version, creation
// time, batch id, settings summary) followed by one indexed line per
// password with its strength label in parentheses.
func Write(w io.Writer, b Batch, version string) error {
	header := fmt.Sprintf(
		"# passforge %s password export\n# generated: %s\n# batch: %s\n# settings: %s\n",
		version,
		b.CreatedAt.Format(time.RFC3339),
		b.ID,
		b.Settings.Summary(),
	)
	if _, err := io.WriteString(w, header); err != nil {
		return oops.Code("EXPORT_WRITE_FAILED").Wrap(err)
	}

	for i, pw := range b.Passwords {
		line := fmt.Sprintf("%d. %s (%s)\n", i+1, pw, strength.Evaluate(pw).Rating.Label())
		if _, err := io.WriteString(w, line); err != nil {
			return oops.Code("EXPORT_WRITE_FAILED").Wrap(err)
		}
	}
	return nil
}

// WriteFile writes the batch to path with owner-only permissions.
func WriteFile(path string, b Batch, version string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return oops.Code("EXPORT_WRITE_FAILED").With("path", path).Wrap(err)
	}

	if err := Write(f, b, version); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return oops.Code("EXPORT_WRITE_FAILED").With("path", path).Wrap(err)
	}
	return nil
}
