package httpx

import (
	"net/http"

	"github.com/keyhaven/crm-ui-api/internal/domain/model"
	"github.com/keyhaven/crm-ui-api/internal/service"
)

// ProfileHandlers exposes the caller's one-time user profile.
type ProfileHandlers struct {
	Svc *service.ProfileService
}

// Current returns the caller's saved profile, or a null profile when none
// has been saved yet.
// GET /api/profile.
func (h *ProfileHandlers) Current(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Svc.Current(r.Context(), CallerPrincipal(r.Context()))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"profile": profile})
}

// Save persists the caller's profile.
// PUT /api/profile.
func (h *ProfileHandlers) Save(w http.ResponseWriter, r *http.Request) {
	var profile model.UserProfile
	if !DecodeJSON(w, r, &profile) {
		return
	}
	if err := h.Svc.Save(r.Context(), CallerPrincipal(r.Context()), profile); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}
