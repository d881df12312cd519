package config

import (
	"flag"
	"time"
)

const (
	defaultAdapterAddress        = "http://localhost:8080"
	defaultAdapterRequestTimeout = 30 * time.Second
)

// GetClientConfig loads and merges the configuration for the CLI front end
// from environment variables, command-line flags, and an optional JSON file.
// Only the Adapter section is validated; missing values fall back to
// defaults targeting a local server.
//
// Positional arguments are untouched: flag parsing stops at the first
// non-flag argument so the CLI can read its command from flag.Args().
func GetClientConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withClientFlags().
		withJSON().
		buildClient()
}

// ParseClientFlags parses the CLI configuration flags.
//
// Flags:
//
//	-s server base URL (e.g. "http://localhost:8080")
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseClientFlags() *StructuredConfig {
	var serverURL string
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.StringVar(&serverURL, "s", "", "Server base URL")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    serverURL,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

func (b *configBuilder) withClientFlags() *configBuilder {
	b.configs = append(b.configs, ParseClientFlags())
	return b
}

func (b *configBuilder) buildClient() (*StructuredConfig, error) {
	config, err := b.merge()
	if err != nil {
		return nil, err
	}

	if config.Adapter.HTTPAddress == "" {
		config.Adapter.HTTPAddress = defaultAdapterAddress
	}
	if config.Adapter.RequestTimeout == 0 {
		config.Adapter.RequestTimeout = defaultAdapterRequestTimeout
	}

	return config, config.validateClient()
}
