package endpoint

import (
	"github.com/kbukum/endpointkit/validation"
)

// Configuration supplies the connection settings of one API family.
// Config implements it, so embedding Config in a larger struct is enough
// to satisfy the interface.
type Configuration interface {
	EndpointConfig() Config
}

// Config is the connection configuration of an API family.
type Config struct {
	// Host is the host name or IP literal. Empty means not configured.
	Host string `yaml:"host" mapstructure:"host" validate:"required"`

	// Port is the explicit port. Nil leaves the port to the scheme default.
	Port *int `yaml:"port,omitempty" mapstructure:"port" validate:"omitempty,min=0,max=65535"`

	// DisableSecureConnection selects http instead of https.
	DisableSecureConnection bool `yaml:"disable_secure_connection" mapstructure:"disable_secure_connection"`
}

// EndpointConfig returns the receiver.
func (c Config) EndpointConfig() Config {
	return c
}

// Scheme returns "https", or "http" when secure connections are disabled.
func (c Config) Scheme() string {
	if c.DisableSecureConnection {
		return "http"
	}
	return "https"
}

// Validate reports every problem that would make a build fail: a missing
// host, a host that cannot be placed in a URL and an out-of-range port.
// Building never calls Validate; it is a pre-flight check for loaders.
func (c Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if _, err := normalizeHost(c.Host); err != nil {
		return err
	}
	return nil
}
