// Package validation provides input validation for pipekit configuration.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Struct tag validation is
// what the config package uses for pipeline definitions.
//
// # Struct Tag Validation
//
//	type PipelineConfig struct {
//	    Name string `validate:"required,min=2"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("name", cfg.Name)
//	err := v.Validate()
package validation
