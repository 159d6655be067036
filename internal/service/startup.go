package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/keyhaven/crm-ui-api/internal/cache"
	"github.com/keyhaven/crm-ui-api/internal/domain/model"
	"github.com/keyhaven/crm-ui-api/internal/ports"
)

// StartupState is the top-level outcome of the startup gate.
type StartupState string

const (
	StartupLoading StartupState = "loading"
	StartupError   StartupState = "error"
	StartupReady   StartupState = "ready"
)

// StartupView is the single view the client should render once the gate is
// ready. Exactly one view is selected per evaluation.
type StartupView string

const (
	ViewAuthPage       StartupView = "auth_page"
	ViewProfileSetup   StartupView = "profile_setup"
	ViewAdminDashboard StartupView = "admin_dashboard"
	ViewAgentDashboard StartupView = "agent_dashboard"
)

// QueryResult records the observable outcome of one gate query: whether it
// has completed and with what error. Gate decisions are pure functions over
// these.
type QueryResult struct {
	Fetched bool
	Err     error
}

// StartupDecision is the gate verdict for one evaluation.
type StartupDecision struct {
	State StartupState
	View  StartupView
	Err   error
}

// DecideStartup maps the query outcomes to a decision. Anonymous callers
// resolve to the auth page without consulting the queries. Errors take
// precedence in a fixed order, profile before admin flag, so the verdict is
// deterministic when both fail.
func DecideStartup(hasIdentity bool, profile, admin QueryResult, hasProfile, isAdmin bool) StartupDecision {
	if !hasIdentity {
		return StartupDecision{State: StartupReady, View: ViewAuthPage}
	}
	if !profile.Fetched || !admin.Fetched {
		return StartupDecision{State: StartupLoading}
	}
	if profile.Err != nil {
		return StartupDecision{State: StartupError, Err: profile.Err}
	}
	if admin.Err != nil {
		return StartupDecision{State: StartupError, Err: admin.Err}
	}
	if !hasProfile {
		return StartupDecision{State: StartupReady, View: ViewProfileSetup}
	}
	if isAdmin {
		return StartupDecision{State: StartupReady, View: ViewAdminDashboard}
	}
	return StartupDecision{State: StartupReady, View: ViewAgentDashboard}
}

// StartupGate evaluates the post-sign-in routing decision from two cached
// queries: the caller's profile and the admin flag.
type StartupGate struct {
	actor   ports.ActorClient
	queries *cache.Cache
	logger  *slog.Logger
}

// NewStartupGate constructs a StartupGate.
func NewStartupGate(actor ports.ActorClient, queries *cache.Cache, logger *slog.Logger) *StartupGate {
	if logger == nil {
		logger = slog.Default()
	}
	return &StartupGate{actor: actor, queries: queries, logger: logger}
}

// StartupResult is the evaluated gate decision plus the profile when one
// exists, so the client renders the ready view without a second round trip.
type StartupResult struct {
	State   StartupState       `json:"state"`
	View    StartupView        `json:"view,omitempty"`
	Profile *model.UserProfile `json:"profile,omitempty"`
	IsAdmin bool               `json:"isAdmin"`
}

// Evaluate runs both gate queries in parallel and returns the decision. A
// caller without an identity session resolves immediately to the auth page.
// Both queries always run to completion so the error precedence (profile
// first) is decided here, not by goroutine scheduling.
func (g *StartupGate) Evaluate(ctx context.Context, caller string) (*StartupResult, error) {
	if caller == "" {
		return &StartupResult{State: StartupReady, View: ViewAuthPage}, nil
	}

	var (
		profile    *model.UserProfile
		profileErr error
		isAdmin    bool
		adminErr   error
	)

	var eg errgroup.Group
	eg.Go(func() error {
		profile, profileErr = cache.FetchAs[*model.UserProfile](ctx, g.queries, caller, cache.KeyCurrentUserProfile,
			func(ctx context.Context) (any, error) {
				return g.actor.GetCallerUserProfile(ctx, caller)
			})
		return nil
	})
	eg.Go(func() error {
		isAdmin, adminErr = cache.FetchAs[bool](ctx, g.queries, caller, cache.KeyIsAdmin,
			func(ctx context.Context) (any, error) {
				return g.actor.IsCallerAdmin(ctx, caller)
			})
		return nil
	})
	_ = eg.Wait()

	decision := DecideStartup(true,
		QueryResult{Fetched: true, Err: profileErr},
		QueryResult{Fetched: true, Err: adminErr},
		profile != nil, isAdmin)

	if decision.State == StartupError {
		g.logger.WarnContext(ctx, "startup gate query failed", "caller", caller, "error", decision.Err)
		return nil, decision.Err
	}

	return &StartupResult{
		State:   decision.State,
		View:    decision.View,
		Profile: profile,
		IsAdmin: isAdmin,
	}, nil
}

// Retry invalidates exactly the two startup queries for the caller, so the
// next evaluation re-fetches both. No other cached queries are touched.
func (g *StartupGate) Retry(ctx context.Context, caller string) error {
	return g.queries.Invalidate(ctx, caller, cache.KeyCurrentUserProfile, cache.KeyIsAdmin)
}
