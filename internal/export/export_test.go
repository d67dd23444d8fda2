// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 PassForge Contributors

package export_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passforge/passforge/internal/config"
	"github.com/passforge/passforge/internal/export"
)

func TestNewBatch(t *testing.T) {
	b := export.NewBatch([]string{"one", "two"}, config.Default())
	assert.Len(t, b.Passwords, 2)
	assert.WithinDuration(t, time.Now(), b.CreatedAt, time.Minute)
	assert.NotZero(t, b.ID)
	assert.Equal(t, "passforge-"+b.ID.String()+".txt", b.FileName())
}

func TestWrite(t *testing.T) {
	batch := export.NewBatch([]string{"aaaaaaaa", "aB3$fG7!jK2@"}, config.Default())

	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, batch, "1.2.3"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)

	assert.Equal(t, "# passforge 1.2.3 password export", lines[0])
	assert.Equal(t, "# generated: "+batch.CreatedAt.Format(time.RFC3339), lines[1])
	assert.Equal(t, "# batch: "+batch.ID.String(), lines[2])
	assert.Equal(t, "# settings: "+batch.Settings.Summary(), lines[3])

	assert.Equal(t, "1. aaaaaaaa (very weak)", lines[4])
	assert.Equal(t, "2. aB3$fG7!jK2@ (strong)", lines[5])
}

func TestWriteFile(t *testing.T) {
	batch := export.NewBatch([]string{"secret123"}, config.Default())
	path := filepath.Join(t.TempDir(), "out.txt")

	require.NoError(t, export.WriteFile(path, batch, "dev"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "secret123")
}

func TestWriteFile_BadPath(t *testing.T) {
	batch := export.NewBatch([]string{"pw"}, config.Default())
	err := export.WriteFile(filepath.Join(t.TempDir(), "missing", "out.txt"), batch, "dev")
	assert.Error(t, err)
}
