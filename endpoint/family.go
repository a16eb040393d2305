package endpoint

import (
	"fmt"
	"net/url"

	"github.com/kbukum/endpointkit/logger"
	"github.com/kbukum/endpointkit/util"
)

// Variant is one endpoint of a family. Path is appended to the family
// base path verbatim, so it normally starts with "/".
type Variant interface {
	Path() string
}

// Finisher attaches a variant path to components that carry only the base
// path. The components it returns are serialized as they are, so it may
// also retarget scheme, host or port. It receives a copy and cannot change
// the family configuration.
type Finisher func(c Components, path string) Components

// MissingHostError is the panic value raised when a family is asked for a
// URL while its configuration has no host.
type MissingHostError struct {
	Family string
}

func (e *MissingHostError) Error() string {
	if e.Family == "" {
		return "endpoint: no host address was provided; is the endpoint Configuration set correctly?"
	}
	return fmt.Sprintf("endpoint: no host address was provided for family %q; is the endpoint Configuration set correctly?", e.Family)
}

// Family builds URLs for the variants V of one API family. A Family is
// immutable and safe for concurrent use.
type Family[V Variant] struct {
	name     string
	config   Configuration
	basePath string
	log      *logger.Logger
}

// FamilyOption configures a Family.
type FamilyOption func(*familyOptions)

type familyOptions struct {
	name string
	log  *logger.Logger
}

// WithName sets the family name used in logs and errors.
func WithName(name string) FamilyOption {
	return func(o *familyOptions) { o.name = name }
}

// WithLogger sets the logger. Built URLs are logged at debug level and
// serialization failures at warn level.
func WithLogger(l *logger.Logger) FamilyOption {
	return func(o *familyOptions) { o.log = l }
}

// NewFamily binds a configuration and a base path to the variant type V.
func NewFamily[V Variant](cfg Configuration, basePath string, opts ...FamilyOption) *Family[V] {
	var o familyOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.WithComponent("endpoint")
	}
	if o.name != "" {
		o.log = o.log.WithFields(logger.Fields(logger.FieldFamily, o.name))
	}
	return &Family[V]{
		name:     o.name,
		config:   cfg,
		basePath: basePath,
		log:      o.log,
	}
}

// Name returns the family name given with WithName.
func (f *Family[V]) Name() string { return f.name }

// BasePath returns the path shared by all variants.
func (f *Family[V]) BasePath() string { return f.basePath }

// Config returns the current configuration of the family.
func (f *Family[V]) Config() Config {
	if f.config == nil {
		return Config{}
	}
	return f.config.EndpointConfig()
}

// BaseURL returns the family URL without any variant path, or nil if it
// cannot be serialized.
func (f *Family[V]) BaseURL(opts ...Option) *url.URL {
	u, _ := f.BuildBaseURL(opts...)
	return u
}

// URL returns the URL of variant v, or nil if it cannot be serialized.
func (f *Family[V]) URL(v V, opts ...Option) *url.URL {
	u, _ := f.BuildURL(v, opts...)
	return u
}

// CustomURL hands the base components and the variant path to finish and
// serializes the result, or returns nil if that fails.
func (f *Family[V]) CustomURL(v V, finish Finisher, opts ...Option) *url.URL {
	u, err := f.BuildCustomURL(v, finish, opts...)
	if err != nil {
		return nil
	}
	return u
}

// BuildBaseURL is BaseURL with the serialization error returned.
func (f *Family[V]) BuildBaseURL(opts ...Option) (*url.URL, error) {
	return f.serialize("base_url", "", f.components(opts))
}

// BuildURL is URL with the serialization error returned.
func (f *Family[V]) BuildURL(v V, opts ...Option) (*url.URL, error) {
	c := f.components(opts)
	c.Path += v.Path()
	return f.serialize("url", variantName(v), c)
}

// BuildCustomURL is CustomURL with the serialization error returned.
// A nil finish behaves like AppendPath.
func (f *Family[V]) BuildCustomURL(v V, finish Finisher, opts ...Option) (*url.URL, error) {
	if finish == nil {
		finish = AppendPath
	}
	c := finish(f.components(opts), v.Path())
	return f.serialize("custom_url", variantName(v), c)
}

// components resolves the configuration into fresh base components.
// It panics with *MissingHostError when no host is configured.
func (f *Family[V]) components(opts []Option) Components {
	cfg := f.Config()
	if cfg.Host == "" {
		err := &MissingHostError{Family: f.name}
		f.log.Error(err.Error())
		panic(err)
	}
	return Components{
		Scheme: cfg.Scheme(),
		Host:   cfg.Host,
		Port:   util.Clone(cfg.Port),
		Path:   f.basePath,
		Query:  queryItems(opts),
	}
}

func (f *Family[V]) serialize(op, variant string, c Components) (*url.URL, error) {
	u, err := c.URL()
	if err != nil {
		fields := logger.Fields(
			logger.FieldOperation, op,
			logger.FieldHost, c.Host,
			logger.FieldPath, c.Path,
		)
		if c.Port != nil {
			fields[logger.FieldPort] = *c.Port
		}
		if variant != "" {
			fields[logger.FieldVariant] = variant
		}
		f.log.Warn("url could not be built", logger.MergeWithError(fields, err))
		return nil, err
	}
	f.log.Debug("url built", logger.Fields(
		logger.FieldOperation, op,
		logger.FieldVariant, variant,
		logger.FieldOptions, len(c.Query),
		logger.FieldURL, u.String(),
	))
	return u, nil
}

func variantName(v Variant) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return v.Path()
}
