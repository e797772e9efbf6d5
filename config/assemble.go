package config

import (
	"github.com/google/uuid"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/logger"
	"github.com/kbukum/pipekit/pipeline"
	"github.com/kbukum/pipekit/validation"
)

// Assemble resolves every component reference against the registry and
// builds the pipeline, wiring filters and sinks in declared order.
// Components are wrapped with logging middleware carrying the pipeline
// name and a fresh run id; when log is nil a logger is built from the
// definition's logging section. A definition without a source fails
// the same way a builder without one does.
func Assemble[T any](cfg *PipelineConfig, reg *Registry[T], log *logger.Logger) (*pipeline.Pipeline[T], error) {
	if cfg == nil {
		return nil, errors.InvalidConfig("nil pipeline definition")
	}
	if reg == nil {
		return nil, errors.InvalidConfig("nil component registry")
	}
	if err := validation.Validate(cfg); err != nil {
		return nil, err
	}
	if log == nil {
		lcfg := cfg.Logging
		lcfg.ApplyDefaults()
		log = logger.New(&lcfg, cfg.Name)
	}
	log = log.WithFields(map[string]interface{}{
		logger.FieldPipeline: cfg.Name,
		logger.FieldRunID:    uuid.NewString(),
	})

	b := pipeline.New[T]()

	if cfg.Source != nil {
		src, err := reg.source(cfg.Source.Use, cfg.Source.Params)
		if err != nil {
			return nil, err
		}
		b.Source(pipeline.WithSourceLogging(src, cfg.Source.Use, log))
	}

	for _, ref := range cfg.Filters {
		f, err := reg.filter(ref.Use, ref.Params)
		if err != nil {
			return nil, err
		}
		b.AddFilter(pipeline.WithFilterLogging(f, ref.Use, log))
	}

	for _, ref := range cfg.Sinks {
		s, err := reg.sink(ref.Use, ref.Params)
		if err != nil {
			return nil, err
		}
		b.AddSink(pipeline.WithSinkLogging(s, ref.Use, log))
	}

	return b.Build()
}
