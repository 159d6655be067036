package httpx

import (
	"net/http"

	domainauth "github.com/keyhaven/crm-ui-api/internal/domain/auth"
	"github.com/keyhaven/crm-ui-api/internal/domain/model"
	"github.com/keyhaven/crm-ui-api/internal/service"
)

// DirectoryHandlers exposes the customer, lead, and follow-up directories.
type DirectoryHandlers struct {
	Svc *service.DirectoryService
}

// adminScope reports whether the request session carries the admin role, which
// selects the all-records cache keys instead of the per-agent ones.
func adminScope(r *http.Request) bool {
	if s, ok := GetUserSessionFromContext(r.Context()); ok {
		return s.Role == domainauth.RoleAdmin
	}
	return false
}

// Customers lists customers visible to the caller.
// GET /api/customers.
func (h *DirectoryHandlers) Customers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Svc.Customers(r.Context(), CallerPrincipal(r.Context()), adminScope(r))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"customers": customers})
}

// AddCustomer stores a new customer.
// POST /api/customers.
func (h *DirectoryHandlers) AddCustomer(w http.ResponseWriter, r *http.Request) {
	var req model.AddCustomerRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	id, err := h.Svc.AddCustomer(r.Context(), CallerPrincipal(r.Context()), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// Leads lists leads visible to the caller.
// GET /api/leads.
func (h *DirectoryHandlers) Leads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Svc.Leads(r.Context(), CallerPrincipal(r.Context()), adminScope(r))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"leads": leads})
}

// AddLead stores a new lead.
// POST /api/leads.
func (h *DirectoryHandlers) AddLead(w http.ResponseWriter, r *http.Request) {
	var req model.AddLeadRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	id, err := h.Svc.AddLead(r.Context(), CallerPrincipal(r.Context()), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// FollowUps lists follow-ups visible to the caller.
// GET /api/followups.
func (h *DirectoryHandlers) FollowUps(w http.ResponseWriter, r *http.Request) {
	followUps, err := h.Svc.FollowUps(r.Context(), CallerPrincipal(r.Context()), adminScope(r))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"followUps": followUps})
}

// AddFollowUp stores a new follow-up.
// POST /api/followups.
func (h *DirectoryHandlers) AddFollowUp(w http.ResponseWriter, r *http.Request) {
	var req model.AddFollowUpRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	id, err := h.Svc.AddFollowUp(r.Context(), CallerPrincipal(r.Context()), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]string{"id": id})
}
