package config

import (
	"fmt"
	"slices"

	"github.com/kbukum/endpointkit/logger"
	"github.com/kbukum/endpointkit/validation"
)

// Environments lists the accepted values of BaseConfig.Environment.
var Environments = []string{"development", "staging", "production"}

// BaseConfig contains the fields every endpointkit configuration file shares.
// Projects extend it by embedding it in their own config structs.
//
// Example:
//
//	type File struct {
//	    config.BaseConfig `yaml:",inline" mapstructure:",squash"`
//	    Families map[string]Family `yaml:"families" mapstructure:"families"`
//	}
type BaseConfig struct {
	Name        string        `yaml:"name,omitempty" mapstructure:"name"`
	Environment string        `yaml:"environment,omitempty" mapstructure:"environment"`
	Logging     logger.Config `yaml:"logging,omitempty" mapstructure:"logging"`
}

// GetBaseConfig returns the embedded BaseConfig.
func (c *BaseConfig) GetBaseConfig() *BaseConfig {
	return c
}

// ApplyDefaults applies default values to base configuration.
func (c *BaseConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	c.Logging.ApplyDefaults()
}

// Validate validates base configuration. Field errors are reported under
// "environment" and "logging" so callers can merge them.
func (c *BaseConfig) Validate() error {
	v := validation.New()
	v.Custom(slices.Contains(Environments, c.Environment), "environment",
		fmt.Sprintf("must be one of %v (got: %s)", Environments, c.Environment))
	if err := c.Logging.Validate(); err != nil {
		v.AddError("logging", err.Error())
	}
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}
