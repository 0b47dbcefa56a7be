// Package config loads hpackctl's YAML configuration file: the
// dynamic table size a fresh Codec should start with, which Huffman
// policy the encoder should use, and the logger's verbosity.
package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"hpackctl/internal/shared/compression/hpack"
	"hpackctl/internal/shared/constants"
	"hpackctl/internal/shared/recovery"
)

// Config is hpackctl's on-disk configuration shape.
type Config struct {
	TableSize     int    `yaml:"table_size"`
	HuffmanPolicy string `yaml:"huffman_policy"`
	LogLevel      string `yaml:"log_level"`
}

// Default returns the configuration hpackctl uses when no file is
// given: a 4096-byte table, always-Huffman encoding, info logging.
func Default() *Config {
	return &Config{
		TableSize:     constants.DefaultDynamicTableSize,
		HuffmanPolicy: "always",
		LogLevel:      "info",
	}
}

// Load reads and validates a YAML config file at path. Fields left
// zero-valued in the file fall back to Default's values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values are within sane bounds.
func (c *Config) Validate() error {
	if c.TableSize < 0 || c.TableSize > constants.MaxConfigTableSize {
		return fmt.Errorf("config: table_size %d out of range [0, %d]", c.TableSize, constants.MaxConfigTableSize)
	}
	switch c.HuffmanPolicy {
	case "", "always", "shortest":
	default:
		return fmt.Errorf("config: huffman_policy %q must be \"always\" or \"shortest\"", c.HuffmanPolicy)
	}
	return nil
}

// ResolveHuffmanPolicy maps the config's string policy onto the
// hpack package's HuffmanPolicy type.
func (c *Config) ResolveHuffmanPolicy() (hpack.HuffmanPolicy, error) {
	switch c.HuffmanPolicy {
	case "", "always":
		return hpack.HuffmanAlways, nil
	case "shortest":
		return hpack.HuffmanShortest, nil
	default:
		return 0, fmt.Errorf("config: unknown huffman_policy %q", c.HuffmanPolicy)
	}
}

// NewCodec builds a Codec initialized from this configuration.
func (c *Config) NewCodec() (*hpack.Codec, error) {
	return c.build(hpack.New())
}

// NewCodecWithRecovery is like NewCodec, but the returned Codec
// recovers panics from Compress/Decompress via recovery.Guard, logging
// them through logger. Intended for hpackctl subcommands that feed the
// codec attacker-controlled wire bytes.
func (c *Config) NewCodecWithRecovery(logger *zap.Logger, metrics recovery.MetricsCollector) (*hpack.Codec, error) {
	return c.build(hpack.NewWithRecovery(logger, metrics))
}

func (c *Config) build(codec *hpack.Codec) (*hpack.Codec, error) {
	policy, err := c.ResolveHuffmanPolicy()
	if err != nil {
		return nil, err
	}
	codec.SetHuffmanPolicy(policy)

	tableSize := c.TableSize
	if tableSize == 0 {
		tableSize = constants.DefaultDynamicTableSize
	}
	if tableSize != constants.DefaultDynamicTableSize {
		if err := codec.NotifySettings(tableSize); err != nil {
			return nil, err
		}
	}

	return codec, nil
}
