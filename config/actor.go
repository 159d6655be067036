package config

import "time"

// ActorConfig contains configuration for the remote CRM actor gateway.
type ActorConfig struct {
	// GatewayURL is the base URL of the actor gateway, without trailing slash.
	GatewayURL string `env:"GATEWAY_URL,required"`

	// CallTimeout bounds a single actor call attempt.
	CallTimeout time.Duration `env:"CALL_TIMEOUT" envDefault:"15s"`

	// RetryDelay is the fixed delay before the single transport retry.
	RetryDelay time.Duration `env:"RETRY_DELAY" envDefault:"500ms"`
}

// Sanitize applies guardrails to actor configuration values.
func (c *ActorConfig) Sanitize() {
	if c.CallTimeout <= 0 {
		c.CallTimeout = 15 * time.Second
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = 500 * time.Millisecond
	}
}
