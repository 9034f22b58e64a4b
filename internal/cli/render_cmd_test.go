package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haytac/emojify/internal/config"
	"github.com/haytac/emojify/internal/logging"
)

// setupTestAppCfg points the global AppCfg at the builtin dataset.
func setupTestAppCfg(t *testing.T) {
	t.Helper()
	AppCfg = &config.AppConfig{
		IconSize: 16,
		Dataset:  config.DatasetConfig{Source: "builtin"},
		Log:      logging.Config{Level: "error", Console: true},
	}
	t.Cleanup(func() { AppCfg = nil })
}

// executeCommand captures the output of a Cobra command.
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return strings.TrimSpace(buf.String()), err
}

func TestRenderCmd(t *testing.T) {
	setupTestAppCfg(t)

	rootCmd := &cobra.Command{Use: "root"}
	rootCmd.AddCommand(NewRenderCmd())

	output, err := executeCommand(rootCmd, "render", "Hi :grinning: yo", "--class", "emoji")
	require.NoError(t, err)
	assert.Equal(t,
		`Hi <img src="//twemoji.maxcdn.com/16x16/1f600.png" alt="grinning face" class="emoji"> yo`,
		output)
}

func TestRenderCmdLeavesUnknownTokens(t *testing.T) {
	setupTestAppCfg(t)

	rootCmd := &cobra.Command{Use: "root"}
	rootCmd.AddCommand(NewRenderCmd())

	output, err := executeCommand(rootCmd, "render", "keep :definitely_unknown: here")
	require.NoError(t, err)
	assert.Equal(t, "keep :definitely_unknown: here", output)
}

func TestLookupCmd(t *testing.T) {
	setupTestAppCfg(t)

	rootCmd := &cobra.Command{Use: "root"}
	rootCmd.AddCommand(NewLookupCmd())

	output, err := executeCommand(rootCmd, "lookup", "grinning")
	require.NoError(t, err)
	assert.Contains(t, output, "unicode:     1f600")
	assert.Contains(t, output, "description: grinning face")
	assert.Contains(t, output, "url:         //twemoji.maxcdn.com/16x16/1f600.png")

	// Colon-wrapped tokens work the same way.
	output, err = executeCommand(rootCmd, "lookup", ":grinning:")
	require.NoError(t, err)
	assert.Contains(t, output, "1f600")
}

func TestLookupCmdUnknownName(t *testing.T) {
	setupTestAppCfg(t)

	rootCmd := &cobra.Command{Use: "root"}
	rootCmd.AddCommand(NewLookupCmd())

	_, err := executeCommand(rootCmd, "lookup", "definitely_unknown")
	assert.Error(t, err)
}

func TestIsNameArg(t *testing.T) {
	assert.True(t, isNameArg("grinning"))
	assert.True(t, isNameArg(":grinning:"))
	assert.True(t, isNameArg("sweat_smile"))
	assert.True(t, isNameArg("100"))
	assert.False(t, isNameArg("😀"))
	assert.False(t, isNameArg("::"))
	assert.False(t, isNameArg(""))
}
