package catalog

import (
	"io"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/kbukum/endpointkit/config"
	"github.com/kbukum/endpointkit/endpoint"
	"github.com/kbukum/endpointkit/errors"
	"github.com/kbukum/endpointkit/logger"
	"github.com/kbukum/endpointkit/util"
	"github.com/kbukum/endpointkit/validation"
)

// DefaultName is the file name searched for when Load gets no path.
const DefaultName = "endpoints"

// File is the on-disk shape of a catalog. Besides the families it may carry
// the shared name, environment and logging settings.
type File struct {
	config.BaseConfig `yaml:",inline" mapstructure:",squash"`
	Families          map[string]FamilySpec `yaml:"families" mapstructure:"families"`
}

// FamilySpec describes one family. It implements endpoint.Configuration.
type FamilySpec struct {
	Host                    string            `yaml:"host" mapstructure:"host"`
	Port                    *int              `yaml:"port,omitempty" mapstructure:"port"`
	DisableSecureConnection bool              `yaml:"disable_secure_connection,omitempty" mapstructure:"disable_secure_connection"`
	BasePath                string            `yaml:"base_path,omitempty" mapstructure:"base_path"`
	Endpoints               map[string]string `yaml:"endpoints" mapstructure:"endpoints"`
}

// EndpointConfig implements endpoint.Configuration.
func (s FamilySpec) EndpointConfig() endpoint.Config {
	return endpoint.Config{
		Host:                    s.Host,
		Port:                    util.Clone(s.Port),
		DisableSecureConnection: s.DisableSecureConnection,
	}
}

// Validate reports every problem in the file: an unknown environment or
// logging setting, no families, a family whose configuration cannot produce
// a URL, a relative base path and endpoints that are missing or relative.
func (f File) Validate() error {
	v := validation.New()

	base := f.BaseConfig
	base.ApplyDefaults()
	v.Merge("", base.Validate())

	v.Custom(len(f.Families) > 0, "families", "at least one family is required")

	for _, name := range slices.Sorted(maps.Keys(f.Families)) {
		spec := f.Families[name]
		field := "families." + name

		v.Merge(field, spec.EndpointConfig().Validate())
		v.AbsolutePath(field+".base_path", spec.BasePath)
		v.Custom(len(spec.Endpoints) > 0, field+".endpoints", "at least one endpoint is required")

		for _, route := range slices.Sorted(maps.Keys(spec.Endpoints)) {
			path := spec.Endpoints[route]
			v.Required(field+".endpoints."+route, path)
			v.AbsolutePath(field+".endpoints."+route, path)
		}
	}

	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

// Route is a named endpoint of a catalog family. Its pattern may hold
// {name} placeholders for endpoint.ExpandPath.
type Route struct {
	Name    string
	Pattern string
}

// Path implements endpoint.Variant.
func (r Route) Path() string { return r.Pattern }

func (r Route) String() string { return r.Name }

// Catalog is a validated set of family specs. It is read-only and safe for
// concurrent use.
type Catalog struct {
	base     config.BaseConfig
	families map[string]FamilySpec
}

// New validates file and returns a catalog over a copy of it.
func New(file File) (*Catalog, error) {
	if err := file.Validate(); err != nil {
		return nil, err
	}
	families := make(map[string]FamilySpec, len(file.Families))
	for name, spec := range file.Families {
		families[name] = cloneSpec(spec)
	}
	return &Catalog{base: file.BaseConfig, families: families}, nil
}

// Load reads a catalog file. An empty path searches for endpoints.yml
// (or .yaml, .json, .toml) in the usual config locations.
func Load(path string, opts ...config.LoaderOption) (*Catalog, error) {
	if path != "" {
		opts = append([]config.LoaderOption{config.WithConfigFile(path)}, opts...)
	}
	var file File
	if err := config.LoadConfig(DefaultName, &file, opts...); err != nil {
		return nil, err
	}
	return New(file)
}

// Logging returns the logging section with defaults applied, and whether
// the file set a level at all.
func (c *Catalog) Logging() (logger.Config, bool) {
	cfg := c.base.Logging
	set := cfg.Level != ""
	cfg.ApplyDefaults()
	return cfg, set
}

// Names returns the family names in sorted order.
func (c *Catalog) Names() []string {
	return slices.Sorted(maps.Keys(c.families))
}

// Spec returns the spec of the named family.
func (c *Catalog) Spec(family string) (FamilySpec, error) {
	spec, ok := c.families[family]
	if !ok {
		return FamilySpec{}, errors.NotFound("family", family)
	}
	return cloneSpec(spec), nil
}

// Routes returns the routes of a family sorted by name.
func (c *Catalog) Routes(family string) ([]Route, error) {
	spec, ok := c.families[family]
	if !ok {
		return nil, errors.NotFound("family", family)
	}
	routes := make([]Route, 0, len(spec.Endpoints))
	for _, name := range slices.Sorted(maps.Keys(spec.Endpoints)) {
		routes = append(routes, Route{Name: name, Pattern: spec.Endpoints[name]})
	}
	return routes, nil
}

// Route looks up one route of a family.
func (c *Catalog) Route(family, route string) (Route, error) {
	spec, ok := c.families[family]
	if !ok {
		return Route{}, errors.NotFound("family", family)
	}
	pattern, ok := spec.Endpoints[route]
	if !ok {
		return Route{}, errors.NotFound("endpoint", route).WithDetail("family", family)
	}
	return Route{Name: route, Pattern: pattern}, nil
}

// Family returns an endpoint family for the named spec. The family is
// named after the spec unless opts say otherwise.
func (c *Catalog) Family(name string, opts ...endpoint.FamilyOption) (*endpoint.Family[Route], error) {
	spec, ok := c.families[name]
	if !ok {
		return nil, errors.NotFound("family", name)
	}
	opts = append([]endpoint.FamilyOption{endpoint.WithName(name)}, opts...)
	return endpoint.NewFamily[Route](cloneSpec(spec), spec.BasePath, opts...), nil
}

// File returns a copy of the catalog contents.
func (c *Catalog) File() File {
	families := make(map[string]FamilySpec, len(c.families))
	for name, spec := range c.families {
		families[name] = cloneSpec(spec)
	}
	return File{BaseConfig: c.base, Families: families}
}

// Encode writes the catalog as YAML with families and endpoints in sorted
// order.
func (c *Catalog) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c.File()); err != nil {
		return err
	}
	return enc.Close()
}

func cloneSpec(s FamilySpec) FamilySpec {
	s.Port = util.Clone(s.Port)
	s.Endpoints = maps.Clone(s.Endpoints)
	return s
}
