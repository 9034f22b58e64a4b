package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetImportAndShow(t *testing.T) {
	setupTestAppCfg(t)

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "emoji.json")
	dbPath := filepath.Join(dir, "emoji.db")
	payload := `[
		{"name":"grinning","unicode":"1f600","description":"grinning face"},
		{"name":"heart","unicode":"2764","description":"heavy black heart"}
	]`
	require.NoError(t, os.WriteFile(jsonPath, []byte(payload), 0644))

	rootCmd := &cobra.Command{Use: "root"}
	rootCmd.AddCommand(NewDatasetCmd())

	output, err := executeCommand(rootCmd, "dataset", "import", jsonPath, "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, output, "Imported 2 emoji")

	output, err = executeCommand(rootCmd, "dataset", "show", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, output, ":grinning:")
	assert.Contains(t, output, "1f600")
	assert.Contains(t, output, "2 emoji")
}

func TestDatasetImportRequiresPath(t *testing.T) {
	setupTestAppCfg(t) // builtin source, no dataset path configured

	rootCmd := &cobra.Command{Use: "root"}
	rootCmd.AddCommand(NewDatasetCmd())

	_, err := executeCommand(rootCmd, "dataset", "import", "whatever.json")
	assert.Error(t, err)
}
