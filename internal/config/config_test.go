package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/sheepshead/internal/game"
	"github.com/lox/sheepshead/internal/store"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sheepshead.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	stakes, err := cfg.GameStakes()
	require.NoError(t, err)
	assert.Equal(t, game.DefaultStakes(), stakes)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, log.WarnLevel, cfg.LogLevel())
}

func TestLoadPartialFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
stakes {
  base_unit = "0.50"
}

table {
  sit_out              = "swap"
  undo_restores_dealer = true
}

log {
  level = "debug"
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	stakes, err := cfg.GameStakes()
	require.NoError(t, err)
	assert.Equal(t, "0.5", stakes.BaseUnit.String())
	assert.Equal(t, "0.25", stakes.PotContribution.String(), "unset amounts keep their defaults")
	assert.Equal(t, log.DebugLevel, cfg.LogLevel())

	opts, err := cfg.SessionOptions(quartz.NewMock(t), log.New(io.Discard))
	require.NoError(t, err)
	assert.Equal(t, game.SitOutSwap, opts.SitOut)
	assert.True(t, opts.UndoRestoresDealer)
	assert.True(t, opts.Stakes.BaseUnit.Equal(stakes.BaseUnit))

	assert.Equal(t, BackendFile, cfg.Storage.Backend, "missing block falls back")
}

func TestLoadRejectsBadFiles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		errText string
	}{
		{name: "syntax", content: `stakes {`, errText: "failed to parse HCL"},
		{name: "unknown attribute", content: "table {\n  seats = 4\n}\n", errText: "failed to decode HCL"},
		{name: "bad amount", content: "stakes {\n  base_unit = \"a quarter\"\n}\n", errText: "not an amount"},
		{name: "zero amount", content: "stakes {\n  kings_unit = \"0\"\n}\n", errText: "kings unit must be positive"},
		{name: "sit out", content: "table {\n  sit_out = \"random\"\n}\n", errText: "unknown sit-out mode"},
		{name: "backend", content: "storage {\n  backend = \"s3\"\n}\n", errText: "unknown backend"},
		{name: "log level", content: "log {\n  level = \"loud\"\n}\n", errText: "invalid level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestOpenStore(t *testing.T) {
	t.Parallel()

	t.Run("file with override", func(t *testing.T) {
		cfg := DefaultConfig()
		override := filepath.Join(t.TempDir(), "other.json")

		s, err := cfg.OpenStore(override, nil)
		require.NoError(t, err)
		fs, ok := s.(*store.FileStore)
		require.True(t, ok)
		assert.Equal(t, override, fs.Path())
	})

	t.Run("redis", func(t *testing.T) {
		path := writeConfig(t, "storage {\n  backend = \"redis\"\n  redis_addr = \"cache:6379\"\n}\n")
		cfg, err := Load(path)
		require.NoError(t, err)

		s, err := cfg.OpenStore("", nil)
		require.NoError(t, err)
		rs, ok := s.(*store.RedisStore)
		require.True(t, ok)
		require.NoError(t, rs.Close())
	})
}

func TestExpandHome(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	assert.Equal(t, filepath.Join(home, ".sheepshead", "g.json"), expandHome("~/.sheepshead/g.json"))
	assert.Equal(t, "/tmp/g.json", expandHome("/tmp/g.json"))
}
