package ports

// Package ports defines interfaces (hexagonal ports) for the external
// collaborators this service depends on. Implementations live in
// internal/adapters; orchestration in internal/service.

import (
	"context"

	"github.com/keyhaven/crm-ui-api/internal/domain/approval"
	"github.com/keyhaven/crm-ui-api/internal/domain/model"
)

// ActorClient is the remote CRM actor: the single source of truth for
// agents, customers, leads, follow-ups, messages, and call logs. Every
// method is an asynchronous request/response against the actor's RPC
// surface; this service holds only cached, time-bounded copies of its data.
//
// Caller-scoped operations take the caller principal explicitly rather than
// binding a client per identity.
type ActorClient interface {
	// Profile
	GetCallerUserProfile(ctx context.Context, caller string) (*model.UserProfile, error)
	SaveCallerUserProfile(ctx context.Context, caller string, profile model.UserProfile) error

	// Role and approval checks
	IsCallerAdmin(ctx context.Context, caller string) (bool, error)
	IsCallerApproved(ctx context.Context, caller string) (bool, error)

	// Agent lifecycle. GetAgentProfileByCaller fails when the caller is not
	// approved or has no live face-login session; callers treat any failure
	// as "no profile".
	GetAgentProfileByCaller(ctx context.Context, caller string) (*model.AgentProfile, error)
	RegisterAgent(ctx context.Context, caller string, req model.RegisterAgentRequest) error
	LoginAgent(ctx context.Context, caller string, faceImage []byte) error
	LogoutAgent(ctx context.Context, caller string) error

	// Admin approval console
	ApproveAgent(ctx context.Context, caller, mobile string) error
	RejectAgent(ctx context.Context, caller, mobile string) error
	SetApproval(ctx context.Context, caller, principal string, status approval.Status) error
	ListApprovals(ctx context.Context, caller string) ([]model.ApprovalInfo, error)
	GetAllAgentProfiles(ctx context.Context, caller string) ([]model.AgentProfile, error)
	GetAgentLoginTimesAndStatus(ctx context.Context, caller string) ([]model.AgentActivity, error)

	// Directory
	GetCustomers(ctx context.Context, caller string) ([]model.Customer, error)
	AddCustomer(ctx context.Context, caller string, req model.AddCustomerRequest) (string, error)
	GetLeads(ctx context.Context, caller string) ([]model.Lead, error)
	AddLead(ctx context.Context, caller string, req model.AddLeadRequest) (string, error)
	GetFollowUps(ctx context.Context, caller string) ([]model.FollowUp, error)
	AddFollowUp(ctx context.Context, caller string, req model.AddFollowUpRequest) (string, error)

	// Communications
	GetWhatsAppMessages(ctx context.Context, caller string) ([]model.WhatsAppMessage, error)
	AddWhatsAppMessage(ctx context.Context, caller string, req model.AddWhatsAppMessageRequest) (string, error)
	GetCallLogs(ctx context.Context, caller string) ([]model.CallLog, error)
	AddCallLog(ctx context.Context, caller string, req model.AddCallLogRequest) (string, error)
}
