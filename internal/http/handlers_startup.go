package httpx

import (
	"net/http"

	"github.com/keyhaven/crm-ui-api/internal/service"
)

// StartupHandlers exposes the post-sign-in startup gate.
type StartupHandlers struct {
	Gate *service.StartupGate
}

// Evaluate returns the startup routing decision for the caller.
// GET /api/startup.
func (h *StartupHandlers) Evaluate(w http.ResponseWriter, r *http.Request) {
	result, err := h.Gate.Evaluate(r.Context(), CallerPrincipal(r.Context()))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

// Retry drops the cached startup queries and re-evaluates the gate.
// POST /api/startup/retry.
func (h *StartupHandlers) Retry(w http.ResponseWriter, r *http.Request) {
	caller := CallerPrincipal(r.Context())
	if err := h.Gate.Retry(r.Context(), caller); err != nil {
		WriteAppError(w, err)
		return
	}
	result, err := h.Gate.Evaluate(r.Context(), caller)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

// AccessHandlers exposes the agent dashboard access gate.
type AccessHandlers struct {
	Gate *service.AgentAccessGate
}

// Evaluate returns the access verdict for the caller.
// GET /api/agent/access.
func (h *AccessHandlers) Evaluate(w http.ResponseWriter, r *http.Request) {
	result, err := h.Gate.Evaluate(r.Context(), CallerPrincipal(r.Context()))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

// Retry drops the cached gate queries and re-evaluates.
// POST /api/agent/access/retry.
func (h *AccessHandlers) Retry(w http.ResponseWriter, r *http.Request) {
	caller := CallerPrincipal(r.Context())
	if err := h.Gate.Retry(r.Context(), caller); err != nil {
		WriteAppError(w, err)
		return
	}
	result, err := h.Gate.Evaluate(r.Context(), caller)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}
