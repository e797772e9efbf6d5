package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/pipeline"
)

const sampleYAML = `
name: scores
source:
  use: numbers
filters:
  - use: positive
sinks:
  - use: collect
logging:
  level: warn
  format: json
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadFileParsesDefinition(t *testing.T) {
	path := writeFile(t, "pipeline.yml", sampleYAML)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Name != "scores" {
		t.Errorf("expected name scores, got %q", cfg.Name)
	}
	if cfg.Source == nil || cfg.Source.Use != "numbers" {
		t.Errorf("unexpected source ref: %+v", cfg.Source)
	}
	if len(cfg.Filters) != 1 || cfg.Filters[0].Use != "positive" {
		t.Errorf("unexpected filters: %+v", cfg.Filters)
	}
	if len(cfg.Sinks) != 1 || cfg.Sinks[0].Use != "collect" {
		t.Errorf("unexpected sinks: %+v", cfg.Sinks)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestLoadFileRejectsMissingName(t *testing.T) {
	path := writeFile(t, "pipeline.yml", "source:\n  use: numbers\n")

	_, err := LoadFile(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if errors.CodeOf(err) != errors.ErrCodeInvalidConfig {
		t.Fatalf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestLoadFileRejectsRefWithoutUse(t *testing.T) {
	path := writeFile(t, "pipeline.yml", "name: p\nsinks:\n  - params: {}\n")

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected validation error for sink ref without use")
	}
}

func TestLoadFileMissingFile(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	path := writeFile(t, "pipeline.yml", sampleYAML)
	t.Setenv("PIPELINE_LOGGING_LEVEL", "debug")

	cfg, err := Load(WithConfigFile(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected env override to win, got %q", cfg.Logging.Level)
	}
	if cfg.Name != "scores" {
		t.Errorf("expected file value to survive, got %q", cfg.Name)
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "pipeline.yml")
	if err := os.WriteFile(cfgPath, []byte(sampleYAML), 0o600); err != nil {
		t.Fatal(err)
	}
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("PIPELINE_LOGGING_FORMAT=console\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("PIPELINE_LOGGING_FORMAT") })

	cfg, err := Load(WithConfigFile(cfgPath), WithEnvFile(envPath))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("expected .env override, got %q", cfg.Logging.Format)
	}
}

func newTestRegistry(collected *[]int) *Registry[int] {
	reg := NewRegistry[int]()
	reg.RegisterSource("numbers", func(map[string]interface{}) (pipeline.Source[int], error) {
		items := []int{-1, 2, 3}
		return pipeline.SourceFunc[int](func(context.Context) (int, bool) {
			if len(items) == 0 {
				return 0, false
			}
			item := items[0]
			items = items[1:]
			return item, true
		}), nil
	})
	reg.RegisterFilter("positive", func(map[string]interface{}) (pipeline.Filter[int], error) {
		return pipeline.FilterFunc[int](func(_ context.Context, item int) bool {
			return item > 0
		}), nil
	})
	reg.RegisterSink("collect", func(map[string]interface{}) (pipeline.Sink[int], error) {
		return pipeline.SinkFunc[int](func(_ context.Context, item int) error {
			*collected = append(*collected, item)
			return nil
		}), nil
	})
	return reg
}

func TestAssembleBuildsRunnablePipeline(t *testing.T) {
	var collected []int
	reg := newTestRegistry(&collected)

	cfg := &PipelineConfig{
		Name:    "scores",
		Source:  &ComponentRef{Use: "numbers"},
		Filters: []ComponentRef{{Use: "positive"}},
		Sinks:   []ComponentRef{{Use: "collect"}},
	}

	p, err := Assemble(cfg, reg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(collected) != 2 || collected[0] != 2 || collected[1] != 3 {
		t.Fatalf("expected [2 3], got %v", collected)
	}
}

func TestAssembleUnknownComponent(t *testing.T) {
	var collected []int
	reg := newTestRegistry(&collected)

	cfg := &PipelineConfig{
		Name:   "scores",
		Source: &ComponentRef{Use: "no-such-source"},
	}

	_, err := Assemble(cfg, reg, nil)
	if err == nil {
		t.Fatal("expected error for unknown source")
	}
	if errors.CodeOf(err) != errors.ErrCodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestAssembleWithoutSource(t *testing.T) {
	var collected []int
	reg := newTestRegistry(&collected)

	cfg := &PipelineConfig{
		Name:  "scores",
		Sinks: []ComponentRef{{Use: "collect"}},
	}

	_, err := Assemble(cfg, reg, nil)
	if err == nil {
		t.Fatal("expected error for definition without source")
	}
	if errors.CodeOf(err) != errors.ErrCodeMissingSource {
		t.Fatalf("expected MISSING_SOURCE, got %v", err)
	}
}

func TestAssembleNilArguments(t *testing.T) {
	var collected []int
	reg := newTestRegistry(&collected)

	if _, err := Assemble[int](nil, reg, nil); errors.CodeOf(err) != errors.ErrCodeInvalidConfig {
		t.Fatalf("expected INVALID_CONFIG for nil config, got %v", err)
	}
	cfg := &PipelineConfig{Name: "scores", Source: &ComponentRef{Use: "numbers"}}
	if _, err := Assemble[int](cfg, nil, nil); errors.CodeOf(err) != errors.ErrCodeInvalidConfig {
		t.Fatalf("expected INVALID_CONFIG for nil registry, got %v", err)
	}
}

func TestRegistryLists(t *testing.T) {
	var collected []int
	reg := newTestRegistry(&collected)
	reg.RegisterSource("alpha", func(map[string]interface{}) (pipeline.Source[int], error) {
		return nil, nil
	})

	sources := reg.Sources()
	if len(sources) != 2 || sources[0] != "alpha" || sources[1] != "numbers" {
		t.Errorf("expected sorted source names, got %v", sources)
	}
	if got := reg.Filters(); len(got) != 1 || got[0] != "positive" {
		t.Errorf("unexpected filters: %v", got)
	}
	if got := reg.Sinks(); len(got) != 1 || got[0] != "collect" {
		t.Errorf("unexpected sinks: %v", got)
	}
}
