package commands

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

const testOrgNr = "556000-0000"

// ledger2025 is a SIE export with opening balances, one sale and one rent
// payment in Q1 and one sale in Q2.
const ledger2025 = `#FLAGGA 0
#PROGRAM "Bokföring" 1.0
#FORMAT PC8
#SIETYP 4
#ORGNR 556000-0000
#FNAMN "Exempel AB"
#RAR 0 20250101 20251231
#KONTO 1930 "Företagskonto"
#KONTO 2081 "Aktiekapital"
#IB 0 1930 25000.00
#IB 0 2081 -25000.00
#VER A 1 20250115 "Faktura 1001"
{
#TRANS 1510 {} 12500.00
#TRANS 3001 {} -10000.00
#TRANS 2611 {} -2500.00
}
#VER A 2 20250120 "Hyra januari"
{
#TRANS 5010 {} 4000.00
#TRANS 2641 {} 1000.00
#TRANS 1930 {} -5000.00
}
#VER A 3 20250210 "Inbetalning 1001"
{
#TRANS 1930 {} 12500.00
#TRANS 1510 {} -12500.00
}
#VER A 4 20250405 "Faktura 1002"
{
#TRANS 1930 {} 6250.00
#TRANS 3001 {} -5000.00
#TRANS 2611 {} -1250.00
}
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

// newRepo initializes a repository without git.
func newRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := execute(t, "init", dir, "--name", "Exempel AB", "--orgnr", testOrgNr, "--no-git")
	require.NoError(t, err)
	return dir
}

func writeSIE(t *testing.T, dir, name, content string) {
	t.Helper()
	data, err := charmap.CodePage437.NewEncoder().String(content)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "import", name), []byte(data), 0o644))
}

// importedRepo returns a repository with ledger2025 imported.
func importedRepo(t *testing.T) string {
	t.Helper()
	dir := newRepo(t)
	writeSIE(t, dir, "2025.se", ledger2025)
	_, err := execute(t, "import", "--repo", dir)
	require.NoError(t, err)
	return dir
}

func openTestWorkspace(t *testing.T, dir string) *workspace {
	t.Helper()
	w, err := openWorkspace(dir, &bytes.Buffer{})
	require.NoError(t, err)
	return w
}
