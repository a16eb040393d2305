// Package cli implements the endpointctl commands.
package cli

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kbukum/endpointkit/catalog"
	"github.com/kbukum/endpointkit/config"
	"github.com/kbukum/endpointkit/endpoint"
	"github.com/kbukum/endpointkit/logger"
	"github.com/kbukum/endpointkit/util"
)

// EnvPrefix prefixes every environment variable endpointctl reads, both
// for its own flags and for catalog overrides.
const EnvPrefix = "ENDPOINTCTL"

const (
	keyConfig   = "config"
	keyLogLevel = "log_level"
)

// app carries the state shared by the commands of one invocation.
type app struct {
	v      *viper.Viper
	log    *logger.Logger
	errOut io.Writer
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the endpointctl command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "endpointctl",
		Short: "Compose endpoint URLs from a catalog file",
		Long: `endpointctl prints URLs for the endpoint families declared in a catalog
file (endpoints.yml by default).

Values in the catalog can be overridden from the environment, for example
ENDPOINTCTL_FAMILIES_MOVIES_HOST=staging.example.com.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initLogger(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "catalog file (default searches endpoints.yml, .yaml, .json, .toml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (trace, debug, info, warn, error, disabled)")

	// Bind to viper
	_ = a.v.BindPFlag(keyConfig, rootCmd.PersistentFlags().Lookup("config"))
	_ = a.v.BindPFlag(keyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	a.v.SetEnvPrefix(EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	// Add subcommands
	rootCmd.AddCommand(newURLCmd(a))
	rootCmd.AddCommand(newBaseCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newExportCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// initLogger builds the logger from --log-level. The catalog's logging
// section may replace it later, see applyCatalogLogging.
func (a *app) initLogger(cmd *cobra.Command) error {
	a.errOut = cmd.ErrOrStderr()
	cfg := &logger.Config{
		Level:   a.v.GetString(keyLogLevel),
		Format:  "console",
		NoColor: true,
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.log = logger.NewWithWriter(cfg, "endpointctl", a.errOut)
	return nil
}

// applyCatalogLogging switches to the catalog's logging section when the
// catalog sets a level and neither --log-level nor ENDPOINTCTL_LOG_LEVEL
// was given. Logs always go to stderr so they never mix with URLs.
func (a *app) applyCatalogLogging(c *catalog.Catalog) {
	cfg, ok := c.Logging()
	if !ok || a.v.IsSet(keyLogLevel) || a.errOut == nil {
		return
	}
	a.log = logger.NewWithWriter(&cfg, "endpointctl", a.errOut)
}

func (a *app) getLogger() *logger.Logger {
	if a.log == nil {
		return logger.NewNop()
	}
	return a.log
}

func (a *app) loadCatalog() (*catalog.Catalog, error) {
	path := a.v.GetString(keyConfig)
	c, err := catalog.Load(path,
		config.WithEnvPrefix(EnvPrefix),
		config.WithLogger(a.getLogger().WithComponent("config")),
	)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", util.Coalesce(path, catalog.DefaultName), err)
	}
	a.applyCatalogLogging(c)
	return c, nil
}

func (a *app) family(c *catalog.Catalog, name string) (*endpoint.Family[catalog.Route], error) {
	return c.Family(name, endpoint.WithLogger(a.getLogger().WithComponent("endpoint")))
}

// build runs fn and turns a missing-host panic into an error, so a bad
// configuration ends the command instead of the process.
func build(fn func() (*url.URL, error)) (u *url.URL, err error) {
	defer func() {
		if r := recover(); r != nil {
			mhe, ok := r.(*endpoint.MissingHostError)
			if !ok {
				panic(r)
			}
			u, err = nil, fmt.Errorf("configuration error: %w", mhe)
		}
	}()
	return fn()
}
