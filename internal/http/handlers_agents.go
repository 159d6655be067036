package httpx

import (
	"context"
	"errors"
	"net/http"

	"github.com/keyhaven/crm-ui-api/internal/domain/approval"
	"github.com/keyhaven/crm-ui-api/internal/domain/model"
	"github.com/keyhaven/crm-ui-api/internal/service"
)

// AgentHandlers exposes agent registration, face login and logout, and the
// admin approval console.
type AgentHandlers struct {
	Svc *service.AgentService
}

// Register submits an agent registration for the caller.
// POST /api/agents/register.
func (h *AgentHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterAgentRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := h.Svc.Register(r.Context(), CallerPrincipal(r.Context()), req); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]string{"status": "registered"})
}

// Login performs a face login for the caller.
// POST /api/agents/login.
func (h *AgentHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FaceImage []byte `json:"faceImage"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := h.Svc.Login(r.Context(), CallerPrincipal(r.Context()), req.FaceImage); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "logged_in"})
}

// Logout ends the caller's face-login session.
// POST /api/agents/logout.
func (h *AgentHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Logout(r.Context(), CallerPrincipal(r.Context())); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

// Approve marks the agent with the given mobile as approved.
// POST /api/admin/agents/approve.
func (h *AgentHandlers) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.Svc.Approve)
}

// Reject marks the agent with the given mobile as rejected.
// POST /api/admin/agents/reject.
func (h *AgentHandlers) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.Svc.Reject)
}

func (h *AgentHandlers) decide(
	w http.ResponseWriter, r *http.Request,
	apply func(ctx context.Context, caller, mobile string) error,
) {
	var req struct {
		Mobile string `json:"mobile"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := apply(r.Context(), CallerPrincipal(r.Context()), req.Mobile); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// SetApproval sets an explicit approval status on a principal.
// POST /api/admin/agents/approval.
func (h *AgentHandlers) SetApproval(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Principal string `json:"principal"`
		Status    string `json:"status"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	status, ok := approval.Parse(req.Status)
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_status",
			Err:     errors.New("unknown approval status"),
		})
		return
	}
	if err := h.Svc.SetApproval(r.Context(), CallerPrincipal(r.Context()), req.Principal, status); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// Pending lists registrations awaiting a decision.
// GET /api/admin/agents/pending.
func (h *AgentHandlers) Pending(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.Svc.Pending)
}

// Approved lists approved registrations.
// GET /api/admin/agents/approved.
func (h *AgentHandlers) Approved(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.Svc.Approved)
}

func (h *AgentHandlers) list(
	w http.ResponseWriter, r *http.Request,
	fetch func(ctx context.Context, caller string) ([]model.ApprovalInfo, error),
) {
	agents, err := fetch(r.Context(), CallerPrincipal(r.Context()))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"agents": agents})
}

// Profiles lists every registered agent profile.
// GET /api/admin/agents/profiles.
func (h *AgentHandlers) Profiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.Svc.AllProfiles(r.Context(), CallerPrincipal(r.Context()))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"profiles": profiles})
}

// LoginTimes reports last face-login time and active flag per agent.
// GET /api/admin/agents/login-times.
func (h *AgentHandlers) LoginTimes(w http.ResponseWriter, r *http.Request) {
	activity, err := h.Svc.LoginTimes(r.Context(), CallerPrincipal(r.Context()))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"activity": activity})
}
