// Package validation provides configuration validation for endpointkit.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Both report failures as
// an *errors.AppError whose details list every offending field.
//
// # Struct Tag Validation
//
//	type Family struct {
//	    Name string `yaml:"name" validate:"required"`
//	    Port *int   `yaml:"port" validate:"omitempty,min=0,max=65535"`
//	}
//	err := validation.Validate(family)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.AbsolutePath("base_path", f.BasePath)
//	err := v.Validate()
package validation
