package httpx

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	domainauth "github.com/keyhaven/crm-ui-api/internal/domain/auth"
	"github.com/keyhaven/crm-ui-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth         *service.AuthService
	Startup      *service.StartupGate
	Access       *service.AgentAccessGate
	Profiles     *service.ProfileService
	Agents       *service.AgentService
	Directory    *service.DirectoryService
	Chat         *service.ChatService
	CookieDomain string
	// Optional: metrics endpoint is only mounted when a gatherer is supplied.
	Metrics prometheus.Gatherer
	Logger  *slog.Logger
}

// NewRouter creates and configures the HTTP router.
func NewRouter(services RouterServices) (http.Handler, error) {
	mux := http.NewServeMux()

	var authHandlers *AuthHandlers
	if services.Auth != nil {
		authHandlers = &AuthHandlers{Svc: services.Auth, CookieDomain: services.CookieDomain, Logger: services.Logger}
		registerAuthRoutes(mux, authHandlers)
	}

	registerStartupRoutes(mux, &StartupHandlers{Gate: services.Startup}, services.Auth)
	registerAccessRoutes(mux, &AccessHandlers{Gate: services.Access}, services.Auth)
	registerProfileRoutes(mux, &ProfileHandlers{Svc: services.Profiles}, services.Auth)
	registerAgentRoutes(mux, &AgentHandlers{Svc: services.Agents}, services.Auth)
	registerDirectoryRoutes(mux, &DirectoryHandlers{Svc: services.Directory}, services.Auth)
	registerChatRoutes(mux, &ChatHandlers{Svc: services.Chat}, services.Auth)

	exportHandlers, err := NewExportHandlers(services.Directory, services.Logger)
	if err != nil {
		return nil, err
	}
	registerExportRoutes(mux, exportHandlers, services.Auth)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	if services.Metrics != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(services.Metrics, promhttp.HandlerOpts{}))
	}

	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var handler http.Handler = mux
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler, nil
}

// authWrap requires a valid identity session when auth is configured; with no
// auth service the routes run open, which only dev setups use.
func authWrap(auth *service.AuthService) func(http.Handler) http.Handler {
	if auth == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	return RequireAuth(auth)
}

// adminWrap additionally requires the admin role.
func adminWrap(auth *service.AuthService) func(http.Handler) http.Handler {
	if auth == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	return RequireRole(auth, domainauth.RoleAdmin)
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("GET /auth/login", h.Login)
	mux.HandleFunc("GET /auth/callback", h.Callback)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/status", h.Status)
}

func registerStartupRoutes(mux *http.ServeMux, h *StartupHandlers, auth *service.AuthService) {
	// The startup gate itself resolves anonymous callers to the auth page,
	// so it rides OptionalAuth rather than RequireAuth.
	wrap := func(hh http.Handler) http.Handler {
		if auth != nil {
			return OptionalAuth(auth)(hh)
		}
		return hh
	}
	mux.Handle("GET /api/startup", wrap(http.HandlerFunc(h.Evaluate)))
	mux.Handle("POST /api/startup/retry", wrap(http.HandlerFunc(h.Retry)))
}

func registerAccessRoutes(mux *http.ServeMux, h *AccessHandlers, auth *service.AuthService) {
	wrap := authWrap(auth)
	mux.Handle("GET /api/agent/access", wrap(http.HandlerFunc(h.Evaluate)))
	mux.Handle("POST /api/agent/access/retry", wrap(http.HandlerFunc(h.Retry)))
}

func registerProfileRoutes(mux *http.ServeMux, h *ProfileHandlers, auth *service.AuthService) {
	wrap := authWrap(auth)
	mux.Handle("GET /api/profile", wrap(http.HandlerFunc(h.Current)))
	mux.Handle("PUT /api/profile", wrap(http.HandlerFunc(h.Save)))
}

func registerAgentRoutes(mux *http.ServeMux, h *AgentHandlers, auth *service.AuthService) {
	wrap := authWrap(auth)
	mux.Handle("POST /api/agents/register", wrap(http.HandlerFunc(h.Register)))
	mux.Handle("POST /api/agents/login", wrap(http.HandlerFunc(h.Login)))
	mux.Handle("POST /api/agents/logout", wrap(http.HandlerFunc(h.Logout)))

	wrapAdmin := adminWrap(auth)
	mux.Handle("POST /api/admin/agents/approve", wrapAdmin(http.HandlerFunc(h.Approve)))
	mux.Handle("POST /api/admin/agents/reject", wrapAdmin(http.HandlerFunc(h.Reject)))
	mux.Handle("POST /api/admin/agents/approval", wrapAdmin(http.HandlerFunc(h.SetApproval)))
	mux.Handle("GET /api/admin/agents/pending", wrapAdmin(http.HandlerFunc(h.Pending)))
	mux.Handle("GET /api/admin/agents/approved", wrapAdmin(http.HandlerFunc(h.Approved)))
	mux.Handle("GET /api/admin/agents/profiles", wrapAdmin(http.HandlerFunc(h.Profiles)))
	mux.Handle("GET /api/admin/agents/login-times", wrapAdmin(http.HandlerFunc(h.LoginTimes)))
}

func registerDirectoryRoutes(mux *http.ServeMux, h *DirectoryHandlers, auth *service.AuthService) {
	wrap := authWrap(auth)
	mux.Handle("GET /api/customers", wrap(http.HandlerFunc(h.Customers)))
	mux.Handle("POST /api/customers", wrap(http.HandlerFunc(h.AddCustomer)))
	mux.Handle("GET /api/leads", wrap(http.HandlerFunc(h.Leads)))
	mux.Handle("POST /api/leads", wrap(http.HandlerFunc(h.AddLead)))
	mux.Handle("GET /api/followups", wrap(http.HandlerFunc(h.FollowUps)))
	mux.Handle("POST /api/followups", wrap(http.HandlerFunc(h.AddFollowUp)))
}

func registerChatRoutes(mux *http.ServeMux, h *ChatHandlers, auth *service.AuthService) {
	wrap := authWrap(auth)
	mux.Handle("GET /api/whatsapp/messages", wrap(http.HandlerFunc(h.Messages)))
	mux.Handle("POST /api/whatsapp/messages", wrap(http.HandlerFunc(h.AddMessage)))
	mux.Handle("GET /api/calls", wrap(http.HandlerFunc(h.CallLogs)))
	mux.Handle("POST /api/calls", wrap(http.HandlerFunc(h.AddCallLog)))
}

func registerExportRoutes(mux *http.ServeMux, h *ExportHandlers, auth *service.AuthService) {
	wrapAdmin := adminWrap(auth)
	mux.Handle("GET /api/admin/export/customers", wrapAdmin(http.HandlerFunc(h.Customers)))
	mux.Handle("GET /api/admin/export/leads", wrapAdmin(http.HandlerFunc(h.Leads)))
	mux.Handle("GET /api/admin/export/followups", wrapAdmin(http.HandlerFunc(h.FollowUps)))
}
