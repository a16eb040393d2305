package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kbukum/endpointkit/logger"
)

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
	Getwd() (string, error)
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

func (rfs *RealFileSystem) Getwd() (string, error) {
	return os.Getwd()
}

// Resolver handles finding and resolving config and env files.
type Resolver struct {
	FileSystem FileSystem
}

// ResolvedFiles contains the resolved config and env file paths.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// configExtensions are tried in order for every search directory.
var configExtensions = []string{"yml", "yaml", "json", "toml"}

// ResolveFiles finds config and env files for name.
// Returns explicit paths if provided, otherwise searches for them.
func (cr *Resolver) ResolveFiles(name string, opts LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{
		ConfigFile: opts.ConfigFile,
		EnvFile:    opts.EnvFile,
	}

	if resolved.ConfigFile == "" {
		resolved.ConfigFile = cr.findConfigFile(name)
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = cr.findEnvFile(name)
	}

	return resolved
}

// findConfigFile searches for <name>.<ext> in the working directory and ./config.
func (cr *Resolver) findConfigFile(name string) string {
	dirs := []string{".", "./config"}
	if wd, err := cr.FileSystem.Getwd(); err == nil {
		dirs = append(dirs, filepath.Join(wd, "config"))
	}

	for _, dir := range dirs {
		for _, ext := range configExtensions {
			path := fmt.Sprintf("%s/%s.%s", dir, name, ext)
			if cr.FileSystem.Exists(path) {
				return path
			}
		}
	}
	return ""
}

// findEnvFile searches for .env.<name> and .env next to the config locations.
func (cr *Resolver) findEnvFile(name string) string {
	envFiles := []string{
		fmt.Sprintf(".env.%s", name),
		".env",
	}

	for _, envFile := range envFiles {
		for _, dir := range []string{".", "./config"} {
			fullPath := fmt.Sprintf("%s/%s", dir, envFile)
			if cr.FileSystem.Exists(fullPath) {
				return fullPath
			}
		}
	}
	return ""
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct env file path (optional)
	EnvPrefix  string // Only bind env vars with this prefix (optional)
	Logger     *logger.Logger
}

// LoaderOption is a functional option for LoadConfig.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithEnvPrefix restricts environment overrides to variables starting with
// prefix + "_". The prefix is stripped before the key is mapped.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvPrefix = strings.TrimSuffix(strings.ToUpper(prefix), "_") }
}

// WithLogger sets the logger used for loader warnings.
func WithLogger(l *logger.Logger) LoaderOption {
	return func(lc *LoaderConfig) { lc.Logger = l }
}

// LoadConfig loads configuration named name into the provided cfg struct.
// It searches for <name>.yml and .env files in standard locations, binds
// environment variables, and unmarshals the result into cfg.
//
// An explicitly configured file that does not exist is an error; a file
// that was only searched for is optional.
func LoadConfig(name string, cfg interface{}, opts ...LoaderOption) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}
	if lc.Logger == nil {
		lc.Logger = logger.WithComponent("config")
	}

	if lc.ConfigFile != "" && !lc.FileSystem.Exists(lc.ConfigFile) {
		return fmt.Errorf("config file %s does not exist", lc.ConfigFile)
	}

	resolver := &Resolver{FileSystem: lc.FileSystem}
	files := resolver.ResolveFiles(name, lc)

	return loadFromResolvedFiles(name, cfg, files, lc)
}

// loadFromResolvedFiles loads configuration from specific files.
func loadFromResolvedFiles(name string, cfg interface{}, files ResolvedFiles, lc LoaderConfig) error {
	v := viper.New()

	// 1. Load the config file first (base configuration)
	if files.ConfigFile != "" && lc.FileSystem.Exists(files.ConfigFile) {
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", files.ConfigFile, err)
		}
	}

	// 2. Load .env file so its variables take part in the binding below
	if files.EnvFile != "" && lc.FileSystem.Exists(files.EnvFile) {
		if err := lc.FileSystem.LoadEnv(files.EnvFile); err != nil {
			fields := logger.ErrorFields("load_env", err)
			fields[logger.FieldFile] = files.EnvFile
			lc.Logger.Warn("failed to load .env file", fields)
		}
	}

	// 3. Environment variables override file values
	autoBindEnvVars(v, lc.EnvPrefix)

	// 4. Unmarshal into config struct
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config %s: %w", name, err)
	}

	return nil
}

// autoBindEnvVars binds environment variables to Viper by converting
// UPPER_CASE_WITH_UNDERSCORES to the nested key they address.
func autoBindEnvVars(v *viper.Viper, prefix string) {
	for _, env := range os.Environ() {
		key, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}
		if prefix != "" {
			stripped, found := strings.CutPrefix(key, prefix+"_")
			if !found || stripped == "" {
				continue
			}
			key = stripped
		}

		// Without a prefix only keys already present are overridden.
		if target, ok := resolveEnvKey(v, key, prefix != ""); ok {
			v.Set(target, value)
		}
	}
}

// resolveEnvKey picks the viper key an environment variable addresses.
// A key that is already set wins. Otherwise, when allowNew is true, the
// deepest variant whose parent is set is chosen, so that
// FAMILIES_MOVIES_BASE_PATH maps to families.movies.base_path.
func resolveEnvKey(v *viper.Viper, envKey string, allowNew bool) (string, bool) {
	variants := generateEnvKeyVariants(envKey)
	for _, variant := range variants {
		if v.IsSet(variant) {
			return variant, true
		}
	}
	if !allowNew {
		return "", false
	}
	if len(variants) == 1 {
		return variants[0], true
	}

	best, bestDepth := "", -1
	for _, variant := range variants {
		i := strings.LastIndex(variant, ".")
		if i < 0 || !v.IsSet(variant[:i]) {
			continue
		}
		if d := strings.Count(variant, "."); d > bestDepth {
			best, bestDepth = variant, d
		}
	}
	return best, best != ""
}

// generateEnvKeyVariants creates all possible key variants for environment variable binding.
// Examples:
//
//	LOGGING_LEVEL -> [logging_level, logging.level]
//	FAMILIES_MOVIES_BASE_PATH -> [..., families.movies.base_path, ...]
func generateEnvKeyVariants(envKey string) []string {
	lowerKey := strings.ToLower(envKey)
	parts := strings.Split(lowerKey, "_")

	if len(parts) <= 1 {
		return []string{lowerKey}
	}

	variants := []string{
		lowerKey,
		strings.ReplaceAll(lowerKey, "_", "."),
	}

	// Every split of the underscore-separated parts into a dotted prefix
	// and an underscore-joined suffix.
	for i := 1; i < len(parts); i++ {
		prefix := strings.Join(parts[:i], ".")
		suffix := strings.Join(parts[i:], "_")
		variants = append(variants, prefix+"."+suffix)
	}

	return removeDuplicates(variants)
}

// removeDuplicates removes duplicate strings from a slice.
func removeDuplicates(items []string) []string {
	seen := make(map[string]bool, len(items))
	result := make([]string, 0, len(items))

	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}

	return result
}
