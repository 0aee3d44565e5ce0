package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdwire/pkg/parser"
)

func loadFrom(t *testing.T, dir string, cli *Config) *LoadResult {
	t.Helper()
	result, err := Load(context.Background(), LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		CLIConfig:          cli,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Config)
	return result
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result := loadFrom(t, t.TempDir(), nil)

	cfg := result.Config
	assert.Equal(t, FormatTelegram, cfg.Format)
	assert.Nil(t, cfg.DetectLanguage)
	assert.Empty(t, result.LoadedFrom)

	opts := cfg.ParserOptions()
	assert.True(t, opts.IgnoreIndentedCodeBlocks)
	assert.Equal(t, parser.DefaultMaxNestingDepth, opts.MaxNestingDepth)

	ropts := cfg.RenderOptions()
	assert.True(t, ropts.NormalizeLanguageTags)
	assert.False(t, ropts.DetectLanguage)
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, ".mdwire.yaml", `
format: canonical
detect_language: true
max_nesting_depth: 25
`)

	result := loadFrom(t, tmpDir, nil)

	assert.Equal(t, []string{path}, result.LoadedFrom)
	cfg := result.Config
	assert.Equal(t, FormatCanonical, cfg.Format)
	require.NotNil(t, cfg.DetectLanguage)
	assert.True(t, *cfg.DetectLanguage)
	assert.Equal(t, 25, cfg.ParserOptions().MaxNestingDepth)
}

func TestLoad_UpwardDiscovery(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	path := writeConfig(t, root, ".mdwire.yaml", "format: canonical\n")

	nested := filepath.Join(root, "docs", "deep")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	result := loadFrom(t, nested, nil)
	assert.Equal(t, path, result.Paths.Project)
	assert.Equal(t, FormatCanonical, result.Config.Format)
}

func TestLoad_DiscoveryStopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeConfig(t, root, ".mdwire.yaml", "format: canonical\n")

	// The nested repo boundary hides the outer config.
	repo := filepath.Join(root, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))

	result := loadFrom(t, repo, nil)
	assert.Empty(t, result.Paths.Project)
	assert.Equal(t, FormatTelegram, result.Config.Format)
}

func TestLoad_CLIOverridesFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ".mdwire.yaml", "format: canonical\nnormalize_tags: true\n")

	result := loadFrom(t, tmpDir, &Config{
		Format:        FormatTelegram,
		NormalizeTags: Bool(false),
	})

	cfg := result.Config
	assert.Equal(t, FormatTelegram, cfg.Format)
	require.NotNil(t, cfg.NormalizeTags)
	assert.False(t, *cfg.NormalizeTags, "explicit false must win over file true")
}

func TestLoad_ExplicitPath(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ".mdwire.yaml", "format: telegram\n")
	explicit := writeConfig(t, tmpDir, "other.yaml", "format: canonical\n")

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir:         tmpDir,
		ExplicitPath:       explicit,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
	})
	require.NoError(t, err)

	// The explicit file merges above the project file.
	assert.Equal(t, FormatCanonical, result.Config.Format)
	assert.Contains(t, result.LoadedFrom, explicit)
}

func TestLoad_UnknownKeyRejected(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ".mdwire.yaml", "formta: canonical\n")

	_, err := Load(context.Background(), LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "formta")
}

func TestLoad_InvalidFormatRejected(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ".mdwire.yaml", "format: html\n")

	_, err := Load(context.Background(), LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
	})
	require.Error(t, err)
}

func TestLoad_EmptyConfigFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ".mdwire.yaml", "")

	result := loadFrom(t, tmpDir, nil)
	assert.Equal(t, FormatTelegram, result.Config.Format)
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	merged := MergeAll(
		NewConfig(),
		&Config{Format: FormatCanonical, MaxNestingDepth: 10},
		&Config{DetectLanguage: Bool(true)},
	)

	assert.Equal(t, FormatCanonical, merged.Format)
	assert.Equal(t, 10, merged.MaxNestingDepth)
	require.NotNil(t, merged.DetectLanguage)
	assert.True(t, *merged.DetectLanguage)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Validate(&Config{Format: FormatTelegram}))
	assert.NoError(t, Validate(&Config{}))
	assert.Error(t, Validate(&Config{Format: "json"}))
	assert.Error(t, Validate(&Config{MaxNestingDepth: -1}))
}
