package configs

import "github.com/flightfolio/core/internal/config"

const redacted = "********"

// redactSecrets blanks credentials before a settings document leaves the API.
func redactSecrets(cfg *config.FullConfig) {
	if cfg.S3Options.SecretAccessKey != "" {
		cfg.S3Options.SecretAccessKey = redacted
	}
	for i := range cfg.AI.Providers {
		if cfg.AI.Providers[i].APIKey != "" {
			cfg.AI.Providers[i].APIKey = redacted
		}
	}
}
