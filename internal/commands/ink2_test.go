package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/forzencookie/scope-ai-sub007/internal/filinglog"
	"github.com/forzencookie/scope-ai-sub007/internal/ink2"
)

func TestINK2_Declarations(t *testing.T) {
	out, err := execute(t, "ink2", "2025", "--repo", importedRepo(t))
	require.NoError(t, err)

	assert.Contains(t, out, "INK2 2026P4 "+testOrgNr)
	assert.Contains(t, out, "INK2R 2026P4")
	assert.Contains(t, out, "INK2S 2026P4")
	assert.Regexp(t, `7011\s+20250101`, out)
	assert.Regexp(t, `7012\s+20251231`, out)
	assert.Regexp(t, `7104\s+11000`, out)
	assert.Regexp(t, `7450\s+11000`, out)
	assert.Regexp(t, `7670\s+11000`, out)
}

func TestINK2_WritesSRU(t *testing.T) {
	dir := importedRepo(t)
	w := openTestWorkspace(t, dir)

	var out bytes.Buffer
	require.NoError(t, runINK2(context.Background(), &out, w, 2025, "exports", clock(2026, 3, 1)))
	assert.Contains(t, out.String(), "Wrote INFO.SRU and BLANKETTER.SRU")

	raw, err := os.ReadFile(filepath.Join(dir, "exports", ink2.FormsFile))
	require.NoError(t, err)
	forms, err := charmap.ISO8859_1.NewDecoder().String(string(raw))
	require.NoError(t, err)
	assert.Contains(t, forms, "#BLANKETT INK2R-2026P4")
	assert.Contains(t, forms, "#IDENTITET 165560000000 20260301")
	assert.Contains(t, forms, "#UPPGIFT 7450 11000")

	_, err = os.Stat(filepath.Join(dir, "exports", ink2.InfoFile))
	assert.NoError(t, err)

	entries, err := filinglog.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filinglog.KindINK2, entries[0].Kind)
	assert.Equal(t, "2026P4", entries[0].Period)
	assert.Equal(t, "11000", entries[0].Amount)
	assert.Equal(t, filepath.Join("exports", ink2.FormsFile), entries[0].File)
}

func TestINK2_BrokenFiscalYear(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "init", dir, "--name", "Exempel AB", "--orgnr", testOrgNr, "--year-start", "07-01", "--no-git")
	require.NoError(t, err)

	out, err := execute(t, "ink2", "2024", "--repo", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "INK2 2026P2", "fiscal year ending in June")
}
