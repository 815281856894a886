package launcher

import (
	"testing"

	"github.com/thenoetrevino/taskflow/internal/config"
)

func TestOptionsApply(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	Options{SeedFile: "demo.yaml", NoLatency: true, LogLevel: "debug"}.Apply(cfg)

	if cfg.SeedFile != "demo.yaml" {
		t.Errorf("Expected seed file 'demo.yaml', got '%s'", cfg.SeedFile)
	}
	if cfg.EffectiveLatencyScale() != 0 {
		t.Errorf("Expected latency disabled, got scale %v", cfg.EffectiveLatencyScale())
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level 'debug', got '%s'", cfg.LogLevel)
	}
}

func TestOptionsApply_EmptyKeepsConfig(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.SeedFile = "keep.yaml"
	Options{}.Apply(cfg)

	if cfg.SeedFile != "keep.yaml" {
		t.Errorf("Expected seed file to be kept, got '%s'", cfg.SeedFile)
	}
	if !cfg.Latency.Enabled {
		t.Error("Expected latency to stay enabled")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level 'info', got '%s'", cfg.LogLevel)
	}
}
