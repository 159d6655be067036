package httpx

import (
	"net/http"

	"github.com/keyhaven/crm-ui-api/internal/domain/model"
	"github.com/keyhaven/crm-ui-api/internal/service"
)

// ChatHandlers exposes WhatsApp message and call log history.
type ChatHandlers struct {
	Svc *service.ChatService
}

// Messages lists the caller's WhatsApp message history.
// GET /api/whatsapp/messages.
func (h *ChatHandlers) Messages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Svc.Messages(r.Context(), CallerPrincipal(r.Context()))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"messages": messages})
}

// AddMessage records a WhatsApp message.
// POST /api/whatsapp/messages.
func (h *ChatHandlers) AddMessage(w http.ResponseWriter, r *http.Request) {
	var req model.AddWhatsAppMessageRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	id, err := h.Svc.AddMessage(r.Context(), CallerPrincipal(r.Context()), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// CallLogs lists the caller's call log history.
// GET /api/calls.
func (h *ChatHandlers) CallLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.Svc.CallLogs(r.Context(), CallerPrincipal(r.Context()))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"callLogs": logs})
}

// AddCallLog records a call log entry.
// POST /api/calls.
func (h *ChatHandlers) AddCallLog(w http.ResponseWriter, r *http.Request) {
	var req model.AddCallLogRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	id, err := h.Svc.AddCallLog(r.Context(), CallerPrincipal(r.Context()), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]string{"id": id})
}
