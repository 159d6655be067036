package service

import (
	"context"

	"github.com/keyhaven/crm-ui-api/internal/cache"
	"github.com/keyhaven/crm-ui-api/internal/domain/model"
	apperrors "github.com/keyhaven/crm-ui-api/internal/errors"
	"github.com/keyhaven/crm-ui-api/internal/ports"
)

// ProfileService serves the caller's one-time user profile through the query
// cache and writes it through the actor.
type ProfileService struct {
	actor   ports.ActorClient
	queries *cache.Cache
}

// NewProfileService constructs a ProfileService.
func NewProfileService(actor ports.ActorClient, queries *cache.Cache) *ProfileService {
	return &ProfileService{actor: actor, queries: queries}
}

// Current returns the caller's user profile, or nil when none has been saved yet.
func (s *ProfileService) Current(ctx context.Context, caller string) (*model.UserProfile, error) {
	return cache.FetchAs[*model.UserProfile](ctx, s.queries, caller, cache.KeyCurrentUserProfile,
		func(ctx context.Context) (any, error) {
			return s.actor.GetCallerUserProfile(ctx, caller)
		})
}

// Save validates and persists the caller's profile, then invalidates the
// cached copy.
func (s *ProfileService) Save(ctx context.Context, caller string, profile model.UserProfile) error {
	if err := profile.Validate(); err != nil {
		return apperrors.Validation(err.Error())
	}
	if err := s.actor.SaveCallerUserProfile(ctx, caller, profile); err != nil {
		return err
	}
	return s.queries.InvalidateFor(ctx, caller, cache.MutationSaveProfile)
}
