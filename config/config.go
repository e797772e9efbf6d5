package config

import (
	"github.com/kbukum/pipekit/logger"
)

// ComponentRef names a registered component and carries its parameters.
type ComponentRef struct {
	Use    string                 `yaml:"use" mapstructure:"use" validate:"required"`
	Params map[string]interface{} `yaml:"params" mapstructure:"params"`
}

// PipelineConfig is a declarative pipeline definition: one source,
// ordered filters, ordered sinks. Filter and sink order in the file is
// the order they run in.
type PipelineConfig struct {
	Name    string         `yaml:"name" mapstructure:"name" validate:"required"`
	Source  *ComponentRef  `yaml:"source" mapstructure:"source"`
	Filters []ComponentRef `yaml:"filters" mapstructure:"filters" validate:"dive"`
	Sinks   []ComponentRef `yaml:"sinks" mapstructure:"sinks" validate:"dive"`
	Logging logger.Config  `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults fills in zero-valued fields.
func (c *PipelineConfig) ApplyDefaults() {
	c.Logging.ApplyDefaults()
}
