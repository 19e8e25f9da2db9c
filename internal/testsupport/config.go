package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"plagcheck/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a default config whose log file, if any, lands in a
// per-test temp directory. Options are applied in order.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfgVal := config.Default()
	builder := &configBuilder{
		t:       t,
		baseDir: t.TempDir(),
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithWhitespaceSegmenter skips dictionary loading.
func WithWhitespaceSegmenter() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Normalizer.Segmenter = config.SegmenterWhitespace
	}
}

// WithFixedEncoding decodes every document with name instead of detecting.
func WithFixedEncoding(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Decoder.EncodingPolicy = config.EncodingPolicyFixed
		b.cfg.Decoder.FixedEncoding = name
	}
}

// WithEmptyInput overrides the scorer's empty input policy.
func WithEmptyInput(policy string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Scorer.EmptyInput = policy
	}
}

// WithLogFile routes logs to a file inside the test directory.
func WithLogFile() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.File = filepath.Join(b.baseDir, "logs", "plagcheck.log")
		b.cfg.Logging.Level = "debug"
	}
}

// WriteConfig marshals cfg to path as TOML.
func WriteConfig(t testing.TB, path string, cfg *config.Config) {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}
