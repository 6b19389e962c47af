package config

import "fmt"

// ClientConfig is the catalogctl configuration view assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the server base URL and request timeout.
	Adapter Adapter
	// Storage contains database settings for the commands that work on the
	// database directly (migrate, user set-role). It is validated lazily by
	// those commands via [Storage.Validate].
	Storage Storage
}

// GetClientConfig builds and validates the catalogctl configuration.
//
// Flags are owned by the command tree, so only the .env file, environment
// variables and the JSON file named by CONFIG are consulted.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv(dotEnvFile).
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error getting client config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: cfg.Adapter,
		Storage: cfg.Storage,
	}

	if err := clientCfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	return clientCfg, nil
}
