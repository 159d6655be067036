package session

// Package session derives the explicit client session phase from the facts
// observed from the remote actor. The phase is a pure projection of a
// point-in-time Snapshot; it carries no state of its own and is recomputed
// on every evaluation.

import "github.com/keyhaven/crm-ui-api/internal/domain/approval"

// Phase is where the caller currently stands in the onboarding funnel.
type Phase string

const (
	// PhaseAnonymous: no identity session; the auth page is the only view.
	PhaseAnonymous Phase = "anonymous"
	// PhaseIdentified: identity exists but no profile record yet.
	PhaseIdentified Phase = "identified"
	// PhaseAdmin: profiled caller flagged as admin by the actor.
	PhaseAdmin Phase = "admin"
	// PhaseAwaitingApproval: registered agent, approval still pending.
	PhaseAwaitingApproval Phase = "awaiting_approval"
	// PhaseRejected: agent registration rejected by an admin.
	PhaseRejected Phase = "rejected"
	// PhaseApproved: approved agent without a live face-login session.
	PhaseApproved Phase = "approved"
	// PhaseFaceVerified: approved agent with a live face-login session.
	PhaseFaceVerified Phase = "face_verified"
)

// Snapshot is the composite of independent facts the gates observe. All
// fields are server-reported; none are persisted client-side.
type Snapshot struct {
	HasIdentity  bool
	HasProfile   bool
	IsAdmin      bool
	Approval     approval.Status
	FaceLoggedIn bool
}

// Derive maps a snapshot to its phase. Checks run in gate order: identity,
// profile, role, approval, face login. Admin short-circuits the agent
// checks; a rejected or pending status is a hard stop before face login.
func Derive(s Snapshot) Phase {
	if !s.HasIdentity {
		return PhaseAnonymous
	}
	if !s.HasProfile {
		return PhaseIdentified
	}
	if s.IsAdmin {
		return PhaseAdmin
	}
	switch s.Approval {
	case approval.StatusRejected:
		return PhaseRejected
	case approval.StatusApproved:
		if s.FaceLoggedIn {
			return PhaseFaceVerified
		}
		return PhaseApproved
	default:
		return PhaseAwaitingApproval
	}
}

// CanAccessDashboard reports whether the phase grants operational dashboard
// access. Admins skip the face-login gate; agents require it.
func (p Phase) CanAccessDashboard() bool {
	return p == PhaseAdmin || p == PhaseFaceVerified
}
