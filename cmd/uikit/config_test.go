package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".uikit.yaml")
	configContent := `
quiet: true

lint:
  strict: true
  max-issues: 25
  print-lines: false
  paths:
    - "custom/**/*.templ"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("quiet"))
	assert.True(t, k.Bool("lint.strict"))
	assert.Equal(t, 25, k.Int("lint.max-issues"))
	assert.False(t, k.Bool("lint.print-lines"))
	assert.Equal(t, []string{"custom/**/*.templ"}, k.Strings("lint.paths"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config — should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.uikit.yaml"))

	config := buildLintConfig()
	assert.False(t, config.Strict)
	assert.Equal(t, 0, config.MaxIssues)
	assert.True(t, config.PrintIssuedLines)
	assert.True(t, config.PrintLinterName)
	assert.Equal(t, []string{"**/*.templ", "**/*.go", "**/*.html"}, config.ScanPaths)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".uikit.yaml")
	configContent := `
lint:
  strict: false
  max-issues: 5
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	// Set env vars that should override config file
	t.Setenv("UIKIT_LINT_STRICT", "true")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("lint.strict"))
}

func TestBuildLintConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".uikit.yaml")
	configContent := `
color: true

lint:
  strict: true
  paths:
    - "src/**/*.go"
  max-issues: 10
  print-lines: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildLintConfig()
	assert.True(t, config.Strict)
	assert.Equal(t, []string{"src/**/*.go"}, config.ScanPaths)
	assert.Equal(t, 10, config.MaxIssues)
	assert.False(t, config.PrintIssuedLines)
	assert.True(t, config.UseColors)
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	require.NoError(t, cmd.Execute())

	// Verify file was created
	data, err := os.ReadFile(".uikit.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "lint:")
	assert.Contains(t, string(data), "strict: false")
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	// Create existing file
	require.NoError(t, os.WriteFile(".uikit.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	// Create existing file
	require.NoError(t, os.WriteFile(".uikit.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init", "--force"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".uikit.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "lint:")
}

func TestResolveCommand_Args(t *testing.T) {
	var out bytes.Buffer
	cmd := rootCmd
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"resolve", "p-2", "bg-red-500", "p-4"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "bg-red-500 p-4\n", out.String())
}

func TestResolveCommand_Stdin(t *testing.T) {
	var out bytes.Buffer
	cmd := rootCmd
	cmd.SetOut(&out)
	cmd.SetIn(bytes.NewBufferString("flex block text-sm\np-2 p-4\n"))
	cmd.SetArgs([]string{"resolve"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "block text-sm\np-4\n", out.String())
}

func TestVersionCommand(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}

func TestGetIntWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, 42, getIntWithFallback("flag-key", "config.key", 42))
}
