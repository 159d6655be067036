package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"github.com/keyhaven/crm-ui-api/config"
	"github.com/keyhaven/crm-ui-api/internal/adapters/actor"
	redisadapter "github.com/keyhaven/crm-ui-api/internal/adapters/redis"
	"github.com/keyhaven/crm-ui-api/internal/cache"
	"github.com/keyhaven/crm-ui-api/internal/observability/metrics"
	"github.com/keyhaven/crm-ui-api/internal/service"
)

// ServiceContainer holds the application services wired at startup.
type ServiceContainer struct {
	Auth      *service.AuthService
	Startup   *service.StartupGate
	Access    *service.AgentAccessGate
	Profiles  *service.ProfileService
	Agents    *service.AgentService
	Directory *service.DirectoryService
	Chat      *service.ChatService

	Registry *prometheus.Registry
}

// ServiceDeps contains the dependencies needed to build services.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NewServices builds the service container from configuration and shared
// infrastructure.
func NewServices(deps ServiceDeps) (*ServiceContainer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	actorMetrics := metrics.NewActorMetrics(registry)

	actorClient, err := actor.NewClient(actor.Config{
		GatewayURL:  cfg.Actor.GatewayURL,
		CallTimeout: cfg.Actor.CallTimeout,
		RetryDelay:  cfg.Actor.RetryDelay,
		Metrics:     actorMetrics,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build actor client: %w", err)
	}

	var queries *cache.Cache
	if deps.RedisClient != nil {
		queries = cache.New(redisadapter.NewCacheRepo(deps.RedisClient), logger)
	} else {
		logger.Warn("query cache degraded to passthrough: redis unavailable")
		queries = cache.New(cache.PassthroughRepo{}, logger)
	}

	authService := BuildAuthService(AuthBuildConfig{
		Auth:        cfg.Auth,
		RedisClient: deps.RedisClient,
		Queries:     queries,
		Logger:      logger,
	})

	return &ServiceContainer{
		Auth:      authService,
		Startup:   service.NewStartupGate(actorClient, queries, logger),
		Access:    service.NewAgentAccessGate(actorClient, queries, logger),
		Profiles:  service.NewProfileService(actorClient, queries),
		Agents:    service.NewAgentService(actorClient, queries, logger),
		Directory: service.NewDirectoryService(actorClient, queries),
		Chat:      service.NewChatService(actorClient, queries),
		Registry:  registry,
	}, nil
}
