package service

import (
	"context"
	"log/slog"

	"github.com/keyhaven/crm-ui-api/internal/cache"
	"github.com/keyhaven/crm-ui-api/internal/domain/model"
	apperrors "github.com/keyhaven/crm-ui-api/internal/errors"
	"github.com/keyhaven/crm-ui-api/internal/ports"
)

// AccessOutcome is the agent dashboard gate verdict.
type AccessOutcome string

const (
	AccessLoading        AccessOutcome = "loading"
	AccessError          AccessOutcome = "error"
	AccessApprovalNotice AccessOutcome = "approval_notice"
	AccessLoginRequired  AccessOutcome = "login_required"
	AccessDashboard      AccessOutcome = "dashboard"
)

// AccessDecision is one evaluation of the agent access gate.
type AccessDecision struct {
	Outcome AccessOutcome
	Err     error
}

// DecideAccess runs the fixed-order gate: loading, error, approval hard
// stop, face login, dashboard. The approval check outranks the profile: a
// not-approved caller sees the notice even when a stale profile is present.
func DecideAccess(approvedQ QueryResult, approved, hasProfile bool) AccessDecision {
	if !approvedQ.Fetched {
		return AccessDecision{Outcome: AccessLoading}
	}
	if approvedQ.Err != nil {
		return AccessDecision{Outcome: AccessError, Err: approvedQ.Err}
	}
	if !approved {
		return AccessDecision{Outcome: AccessApprovalNotice}
	}
	if !hasProfile {
		return AccessDecision{Outcome: AccessLoginRequired}
	}
	return AccessDecision{Outcome: AccessDashboard}
}

// AgentAccessGate decides whether an agent caller may enter the operational
// dashboard, from two cached queries: the approval flag and the agent
// profile. The actor only returns a profile for a live face-login session,
// so profile presence is the face-login signal.
type AgentAccessGate struct {
	actor   ports.ActorClient
	queries *cache.Cache
	logger  *slog.Logger
}

// NewAgentAccessGate constructs an AgentAccessGate.
func NewAgentAccessGate(actor ports.ActorClient, queries *cache.Cache, logger *slog.Logger) *AgentAccessGate {
	if logger == nil {
		logger = slog.Default()
	}
	return &AgentAccessGate{actor: actor, queries: queries, logger: logger}
}

// AccessResult is the evaluated verdict plus the agent profile when the
// dashboard is granted.
type AccessResult struct {
	Outcome AccessOutcome       `json:"outcome"`
	Profile *model.AgentProfile `json:"profile,omitempty"`
}

// Evaluate runs the gate for the caller. The approval query failing is a
// gate error (fail closed); the profile query failing with a domain error
// means no live face login and resolves to the login form.
func (g *AgentAccessGate) Evaluate(ctx context.Context, caller string) (*AccessResult, error) {
	approved, approvedErr := cache.FetchAs[bool](ctx, g.queries, caller, cache.KeyIsCallerApproved,
		func(ctx context.Context) (any, error) {
			return g.actor.IsCallerApproved(ctx, caller)
		})

	var profile *model.AgentProfile
	if approvedErr == nil && approved {
		var profileErr error
		profile, profileErr = cache.FetchAs[*model.AgentProfile](ctx, g.queries, caller, cache.KeyAgentProfileByCaller,
			func(ctx context.Context) (any, error) {
				p, err := g.actor.GetAgentProfileByCaller(ctx, caller)
				if err != nil {
					// No live face login. Transport failures still propagate.
					if apperrors.IsUnavailable(err) || apperrors.IsTimeout(err) {
						return nil, err
					}
					return (*model.AgentProfile)(nil), nil
				}
				return p, nil
			})
		if profileErr != nil {
			g.logger.WarnContext(ctx, "agent profile query failed", "caller", caller, "error", profileErr)
			return nil, profileErr
		}
	}

	decision := DecideAccess(QueryResult{Fetched: true, Err: approvedErr}, approved, profile != nil)
	if decision.Outcome == AccessError {
		g.logger.WarnContext(ctx, "agent access gate query failed", "caller", caller, "error", decision.Err)
		return nil, decision.Err
	}

	result := &AccessResult{Outcome: decision.Outcome}
	if decision.Outcome == AccessDashboard {
		result.Profile = profile
	}
	return result, nil
}

// Retry re-fetches both gate queries without flushing any other cached state.
func (g *AgentAccessGate) Retry(ctx context.Context, caller string) error {
	return g.queries.Invalidate(ctx, caller, cache.KeyIsCallerApproved, cache.KeyAgentProfileByCaller)
}
