package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hpackctl/internal/shared/compression/hpack"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "hpackctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadAppliesDefaultsForMissingFields(t *testing.T) {
	path := writeConfig(t, "log_level: debug\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4096, cfg.TableSize)
	assert.Equal(t, "always", cfg.HuffmanPolicy)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsInvalidHuffmanPolicy(t *testing.T) {
	path := writeConfig(t, "huffman_policy: sometimes\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsOversizedTable(t *testing.T) {
	path := writeConfig(t, "table_size: 999999999\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestResolveHuffmanPolicy(t *testing.T) {
	cfg := Default()
	cfg.HuffmanPolicy = "shortest"
	policy, err := cfg.ResolveHuffmanPolicy()
	require.NoError(t, err)
	assert.Equal(t, hpack.HuffmanShortest, policy)
}

func TestNewCodecAppliesTableSize(t *testing.T) {
	cfg := Default()
	cfg.TableSize = 128
	codec, err := cfg.NewCodec()
	require.NoError(t, err)

	encoded, err := codec.Compress(hpack.HeaderList{{Name: "x", Value: "y"}})
	require.NoError(t, err)
	assert.NotEmpty(t, encoded)
	assert.Equal(t, 128, codec.EncoderTableState().Capacity)
}
