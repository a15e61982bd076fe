// Test Type: Unit Test
// Description: Tests for configuration layering and validation

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/lnopt/pkg/config"
	"github.com/arthur-debert/lnopt/pkg/errors"
	"github.com/arthur-debert/lnopt/pkg/types"
	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every lookup at an empty config dir
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, key := range []string{"METHOD", "SKIP_SMALL", "JOBS", "DRY_RUN", "ASSUME_YES", "SUMMARY", "COLOR"} {
		t.Setenv(config.EnvPrefix+key, "")
		require.NoError(t, os.Unsetenv(config.EnvPrefix+key))
	}
	return filepath.Join(dir, "lnopt")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load(config.LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, types.MethodSHA256, cfg.Method)
	assert.Equal(t, int64(1024), cfg.SkipSmall)
	assert.Equal(t, 1, cfg.Jobs)
	assert.False(t, cfg.DryRun)
	assert.False(t, cfg.AssumeYes)
	assert.Equal(t, "none", cfg.Summary)
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, cfg, config.Default())
}

func TestLoad_Precedence(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.toml"), `
method = "md5"
skip_small = 10
jobs = 2
`)

	t.Run("config file overrides defaults", func(t *testing.T) {
		cfg, err := config.Load(config.LoadOptions{})
		require.NoError(t, err)
		assert.Equal(t, types.MethodMD5, cfg.Method)
		assert.Equal(t, int64(10), cfg.SkipSmall)
		assert.Equal(t, 2, cfg.Jobs)
	})

	t.Run("env overrides config file", func(t *testing.T) {
		t.Setenv("LNOPT_JOBS", "8")
		t.Setenv("LNOPT_DRY_RUN", "true")
		cfg, err := config.Load(config.LoadOptions{})
		require.NoError(t, err)
		assert.Equal(t, 8, cfg.Jobs)
		assert.True(t, cfg.DryRun)
		assert.Equal(t, types.MethodMD5, cfg.Method)
	})

	t.Run("flags override env", func(t *testing.T) {
		t.Setenv("LNOPT_JOBS", "8")
		cfg, err := config.Load(config.LoadOptions{
			Flags: map[string]interface{}{"jobs": 3, "method": "SIZE"},
		})
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Jobs)
		assert.Equal(t, types.MethodSize, cfg.Method)
	})
}

func TestLoad_YAMLFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "method: content\nskip_small: 0\nsummary: yaml\n")

	cfg, err := config.Load(config.LoadOptions{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, types.MethodContent, cfg.Method)
	assert.Equal(t, int64(0), cfg.SkipSmall)
	assert.Equal(t, "yaml", cfg.Summary)
}

func TestLoad_ConfigDir(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.yml"), "jobs: 5\n")

	cfg, err := config.Load(config.LoadOptions{ConfigDir: dir})
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Jobs)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) config.LoadOptions
		code  errors.ErrorCode
	}{
		{
			name: "missing explicit file",
			setup: func(t *testing.T) config.LoadOptions {
				return config.LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "nope.toml")}
			},
			code: errors.ErrConfigLoad,
		},
		{
			name: "malformed toml",
			setup: func(t *testing.T) config.LoadOptions {
				path := filepath.Join(t.TempDir(), "bad.toml")
				writeFile(t, path, "method = = \n")
				return config.LoadOptions{ConfigFile: path}
			},
			code: errors.ErrConfigParse,
		},
		{
			name: "unknown method",
			setup: func(t *testing.T) config.LoadOptions {
				return config.LoadOptions{Flags: map[string]interface{}{"method": "CRC32"}}
			},
			code: errors.ErrInvalidInput,
		},
		{
			name: "zero jobs",
			setup: func(t *testing.T) config.LoadOptions {
				return config.LoadOptions{Flags: map[string]interface{}{"jobs": 0}}
			},
			code: errors.ErrInvalidInput,
		},
		{
			name: "negative threshold",
			setup: func(t *testing.T) config.LoadOptions {
				return config.LoadOptions{Flags: map[string]interface{}{"skip_small": -1}}
			},
			code: errors.ErrInvalidInput,
		},
		{
			name: "unknown summary",
			setup: func(t *testing.T) config.LoadOptions {
				return config.LoadOptions{Flags: map[string]interface{}{"summary": "json"}}
			},
			code: errors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, err := config.Load(tt.setup(t))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestLoad_EmptyMethodFallsBackToDefault(t *testing.T) {
	isolate(t)
	t.Setenv("LNOPT_METHOD", "")

	cfg, err := config.Load(config.LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, types.DefaultMethod, cfg.Method)

	unset := &config.Config{Jobs: 1}
	require.NoError(t, unset.Validate())
	assert.Equal(t, types.DefaultMethod, unset.Method)
	assert.Equal(t, "none", unset.Summary)
	assert.Equal(t, "auto", unset.Color)
}

func TestConfig_ToTOML(t *testing.T) {
	cfg := config.Default()
	cfg.Jobs = 4

	out, err := cfg.ToTOML()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, gotoml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "SHA256", decoded["method"])
	assert.EqualValues(t, 4, decoded["jobs"])
	assert.EqualValues(t, 1024, decoded["skip_small"])
}

func TestDefaultConfigPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	paths := config.DefaultConfigPaths("")
	require.NotEmpty(t, paths)
	assert.Equal(t, "/cfg/lnopt/config.toml", paths[0])

	assert.Equal(t, "/x/config.toml", config.DefaultConfigPaths("/x")[0])
}
