package service

import (
	"context"
	"log/slog"

	"github.com/keyhaven/crm-ui-api/internal/cache"
	"github.com/keyhaven/crm-ui-api/internal/domain/approval"
	"github.com/keyhaven/crm-ui-api/internal/domain/model"
	apperrors "github.com/keyhaven/crm-ui-api/internal/errors"
	"github.com/keyhaven/crm-ui-api/internal/ports"
)

// AgentService covers the agent lifecycle: registration, face login and
// logout, and the admin approval console. Every mutation invalidates through
// the static dependency table; errors flow back to the handler untouched.
type AgentService struct {
	actor   ports.ActorClient
	queries *cache.Cache
	logger  *slog.Logger
}

// NewAgentService constructs an AgentService.
func NewAgentService(actor ports.ActorClient, queries *cache.Cache, logger *slog.Logger) *AgentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AgentService{actor: actor, queries: queries, logger: logger}
}

// Register submits an agent registration. The face capture is mandatory and
// checked before any actor call.
func (s *AgentService) Register(ctx context.Context, caller string, req model.RegisterAgentRequest) error {
	if err := req.Validate(); err != nil {
		return apperrors.Validation(err.Error())
	}
	if err := s.actor.RegisterAgent(ctx, caller, req); err != nil {
		return err
	}
	return s.queries.InvalidateFor(ctx, caller, cache.MutationRegisterAgent)
}

// Login performs a face login for the caller.
func (s *AgentService) Login(ctx context.Context, caller string, faceImage []byte) error {
	if len(faceImage) == 0 {
		return apperrors.ValidationField("faceImage", "face capture is mandatory")
	}
	if err := s.actor.LoginAgent(ctx, caller, faceImage); err != nil {
		return err
	}
	return s.queries.InvalidateFor(ctx, caller, cache.MutationLoginAgent)
}

// Logout ends the caller's face-login session.
func (s *AgentService) Logout(ctx context.Context, caller string) error {
	if err := s.actor.LogoutAgent(ctx, caller); err != nil {
		return err
	}
	return s.queries.InvalidateFor(ctx, caller, cache.MutationLogoutAgent)
}

// Approve marks the agent with the given mobile as approved.
func (s *AgentService) Approve(ctx context.Context, caller, mobile string) error {
	if !model.ValidMobile(mobile) {
		return apperrors.ValidationField("mobile", "mobile must be a 10-digit number")
	}
	if err := s.actor.ApproveAgent(ctx, caller, mobile); err != nil {
		return err
	}
	return s.queries.InvalidateFor(ctx, caller, cache.MutationApproveAgent)
}

// Reject marks the agent with the given mobile as rejected.
func (s *AgentService) Reject(ctx context.Context, caller, mobile string) error {
	if !model.ValidMobile(mobile) {
		return apperrors.ValidationField("mobile", "mobile must be a 10-digit number")
	}
	if err := s.actor.RejectAgent(ctx, caller, mobile); err != nil {
		return err
	}
	return s.queries.InvalidateFor(ctx, caller, cache.MutationRejectAgent)
}

// SetApproval sets an arbitrary approval status on a principal.
func (s *AgentService) SetApproval(ctx context.Context, caller, principal string, status approval.Status) error {
	if principal == "" {
		return apperrors.ValidationField("principal", "principal is required")
	}
	if !status.Valid() {
		return apperrors.ValidationField("status", "unknown approval status")
	}
	if err := s.actor.SetApproval(ctx, caller, principal, status); err != nil {
		return err
	}
	return s.queries.InvalidateFor(ctx, caller, cache.MutationSetApproval)
}

// Pending lists registrations still awaiting a decision.
func (s *AgentService) Pending(ctx context.Context, caller string) ([]model.ApprovalInfo, error) {
	return s.approvalsByStatus(ctx, caller, cache.KeyPendingAgents, approval.StatusPending)
}

// Approved lists approved registrations.
func (s *AgentService) Approved(ctx context.Context, caller string) ([]model.ApprovalInfo, error) {
	return s.approvalsByStatus(ctx, caller, cache.KeyApprovedAgents, approval.StatusApproved)
}

// approvalsByStatus caches a filtered view of the actor's approval listing
// under its own key, so the pending and approved consoles invalidate
// independently of each other.
func (s *AgentService) approvalsByStatus(
	ctx context.Context, caller string, key cache.Key, want approval.Status,
) ([]model.ApprovalInfo, error) {
	return cache.FetchAs[[]model.ApprovalInfo](ctx, s.queries, caller, key,
		func(ctx context.Context) (any, error) {
			all, err := s.actor.ListApprovals(ctx, caller)
			if err != nil {
				return nil, err
			}
			out := make([]model.ApprovalInfo, 0, len(all))
			for _, a := range all {
				if approval.Normalize(a.Status) == want {
					out = append(out, a)
				}
			}
			return out, nil
		})
}

// AllProfiles returns every registered agent profile.
func (s *AgentService) AllProfiles(ctx context.Context, caller string) ([]model.AgentProfile, error) {
	return cache.FetchAs[[]model.AgentProfile](ctx, s.queries, caller, cache.KeyAllAgentProfiles,
		func(ctx context.Context) (any, error) {
			return s.actor.GetAllAgentProfiles(ctx, caller)
		})
}

// LoginTimes returns the last face-login time and active flag per agent.
func (s *AgentService) LoginTimes(ctx context.Context, caller string) ([]model.AgentActivity, error) {
	return cache.FetchAs[[]model.AgentActivity](ctx, s.queries, caller, cache.KeyAgentLoginTimes,
		func(ctx context.Context) (any, error) {
			return s.actor.GetAgentLoginTimesAndStatus(ctx, caller)
		})
}
