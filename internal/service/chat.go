package service

import (
	"context"

	"github.com/keyhaven/crm-ui-api/internal/cache"
	"github.com/keyhaven/crm-ui-api/internal/domain/model"
	apperrors "github.com/keyhaven/crm-ui-api/internal/errors"
	"github.com/keyhaven/crm-ui-api/internal/ports"
)

// ChatService serves WhatsApp message and call log history for the caller.
type ChatService struct {
	actor   ports.ActorClient
	queries *cache.Cache
}

// NewChatService constructs a ChatService.
func NewChatService(actor ports.ActorClient, queries *cache.Cache) *ChatService {
	return &ChatService{actor: actor, queries: queries}
}

// Messages lists the caller's WhatsApp message history.
func (s *ChatService) Messages(ctx context.Context, caller string) ([]model.WhatsAppMessage, error) {
	return cache.FetchAs[[]model.WhatsAppMessage](ctx, s.queries, caller, cache.KeyWhatsAppMessages,
		func(ctx context.Context) (any, error) {
			return s.actor.GetWhatsAppMessages(ctx, caller)
		})
}

// AddMessage validates and records a WhatsApp message, returning its ID.
func (s *ChatService) AddMessage(ctx context.Context, caller string, req model.AddWhatsAppMessageRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", apperrors.Validation(err.Error())
	}
	id, err := s.actor.AddWhatsAppMessage(ctx, caller, req)
	if err != nil {
		return "", err
	}
	return id, s.queries.InvalidateFor(ctx, caller, cache.MutationAddWhatsAppMessage)
}

// CallLogs lists the caller's call log history.
func (s *ChatService) CallLogs(ctx context.Context, caller string) ([]model.CallLog, error) {
	return cache.FetchAs[[]model.CallLog](ctx, s.queries, caller, cache.KeyCallLogs,
		func(ctx context.Context) (any, error) {
			return s.actor.GetCallLogs(ctx, caller)
		})
}

// AddCallLog validates and records a call log entry, returning its ID.
func (s *ChatService) AddCallLog(ctx context.Context, caller string, req model.AddCallLogRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", apperrors.Validation(err.Error())
	}
	id, err := s.actor.AddCallLog(ctx, caller, req)
	if err != nil {
		return "", err
	}
	return id, s.queries.InvalidateFor(ctx, caller, cache.MutationAddCallLog)
}
