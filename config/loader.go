package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/kbukum/pipekit/validation"
)

// LoadFile reads a pipeline definition from a YAML file, applies
// defaults, and validates it.
func LoadFile(path string) (*PipelineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg PipelineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.ApplyDefaults()
	if err := validation.Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoaderConfig holds optional file overrides for Load.
type LoaderConfig struct {
	ConfigFile string
	EnvFile    string
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithConfigFile sets an explicit pipeline file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load loads a pipeline definition, layering sources in order: the
// YAML file as the base, a .env file, then process environment
// variables (highest precedence, PIPELINE_ prefix with underscores for
// nesting, e.g. PIPELINE_LOGGING_LEVEL).
func Load(opts ...LoaderOption) (*PipelineConfig, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.ConfigFile == "" {
		lc.ConfigFile = findFirst("./pipeline.yml", "./pipeline.yaml", "./config/pipeline.yml", "./config.yml")
	}
	if lc.EnvFile == "" {
		lc.EnvFile = findFirst("./.env", "./config/.env")
	}

	if lc.EnvFile != "" {
		if err := godotenv.Load(lc.EnvFile); err != nil {
			return nil, fmt.Errorf("loading %s: %w", lc.EnvFile, err)
		}
	}

	v := viper.New()

	if lc.ConfigFile != "" {
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", lc.ConfigFile, err)
		}
	}

	// viper's AutomaticEnv does not reach nested keys during Unmarshal,
	// so overrides are applied explicitly over the file's key set.
	for _, key := range v.AllKeys() {
		envKey := "PIPELINE_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if val, ok := os.LookupEnv(envKey); ok {
			v.Set(key, val)
		}
	}

	var cfg PipelineConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling pipeline config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := validation.Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func findFirst(paths ...string) string {
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
