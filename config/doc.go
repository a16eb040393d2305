// Package config loads endpointkit configuration files.
//
// It uses Viper to read YAML, JSON or TOML files, loads an optional .env
// file through godotenv, and lets environment variables override file
// values. Overrides can be restricted to a prefix:
//
//	ENDPOINTKIT_FAMILIES_MOVIES_HOST=staging.example.com
//
// overrides families.movies.host when the loader runs with
// WithEnvPrefix("ENDPOINTKIT").
//
// # Usage
//
//	var cfg MyConfig
//	err := config.LoadConfig("endpoints", &cfg, config.WithConfigFile("endpoints.yml"))
package config
