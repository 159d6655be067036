package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/keyhaven/crm-ui-api/config"
	"github.com/keyhaven/crm-ui-api/internal/adapters/authroles"
	"github.com/keyhaven/crm-ui-api/internal/adapters/devauth"
	"github.com/keyhaven/crm-ui-api/internal/adapters/oidc"
	redisadapter "github.com/keyhaven/crm-ui-api/internal/adapters/redis"
	"github.com/keyhaven/crm-ui-api/internal/cache"
	"github.com/keyhaven/crm-ui-api/internal/ports"
	"github.com/keyhaven/crm-ui-api/internal/service"
)

// AuthBuildConfig contains configuration for building the auth service.
type AuthBuildConfig struct {
	Auth        config.AuthConfig
	RedisClient redis.UniversalClient
	Queries     *cache.Cache
	Logger      *slog.Logger
}

// BuildAuthService constructs the authentication service from configuration.
// Returns nil if auth cannot be configured (e.g., Redis unavailable), in
// which case all session-gated routes reject requests.
func BuildAuthService(cfg AuthBuildConfig) *service.AuthService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.RedisClient == nil {
		logger.Warn("auth disabled: session store requires redis")
		return nil
	}

	sessions := redisadapter.NewSessionStoreWithPrefix(cfg.RedisClient, "session:")
	roles := &authroles.StaticRoleMapper{
		AdminGroup: cfg.Auth.AdminGroup,
		AgentGroup: cfg.Auth.AgentGroup,
	}

	var provider ports.AuthProvider
	var err error

	switch cfg.Auth.Mode {
	case config.AuthModeMock:
		provider, err = buildDevAuthProvider(cfg.Auth.DevAuth)
	case config.AuthModeOAuth:
		provider, err = buildOAuthProvider(cfg.Auth.OAuth)
	default:
		logger.Warn("auth disabled: unknown auth mode", "mode", cfg.Auth.Mode)
		return nil
	}
	if err != nil {
		logger.Warn("auth disabled", "mode", cfg.Auth.Mode, "error", err)
		return nil
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Provider: provider,
		Sessions: sessions,
		Roles:    roles,
		Queries:  cfg.Queries,
	})
}

func buildDevAuthProvider(cfg config.DevAuthConfig) (ports.AuthProvider, error) {
	provider, err := devauth.NewProvider(devauth.Config{
		Principal:       cfg.Principal,
		Email:           cfg.Email,
		Groups:          cfg.Groups,
		SessionDuration: cfg.SessionDuration,
	})
	if err != nil {
		return nil, fmt.Errorf("build dev auth provider: %w", err)
	}
	return provider, nil
}

func buildOAuthProvider(cfg config.OAuthConfig) (ports.AuthProvider, error) {
	provider, err := oidc.NewProvider(oidc.ProviderConfig{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scope:        cfg.Scope,
		DiscoveryURL: cfg.DiscoveryURL,
		LogoutURL:    cfg.LogoutURL,
	})
	if err != nil {
		return nil, fmt.Errorf("build oidc provider: %w", err)
	}
	return provider, nil
}
