package service

import (
	"context"

	"github.com/keyhaven/crm-ui-api/internal/cache"
	"github.com/keyhaven/crm-ui-api/internal/domain/model"
	apperrors "github.com/keyhaven/crm-ui-api/internal/errors"
	"github.com/keyhaven/crm-ui-api/internal/ports"
)

// DirectoryService serves the customer, lead, and follow-up directories.
// The actor scopes list results to the caller's role; the cache mirrors that
// with separate all/by-agent keys so admin and agent views age independently.
type DirectoryService struct {
	actor   ports.ActorClient
	queries *cache.Cache
}

// NewDirectoryService constructs a DirectoryService.
func NewDirectoryService(actor ports.ActorClient, queries *cache.Cache) *DirectoryService {
	return &DirectoryService{actor: actor, queries: queries}
}

// Customers lists customers visible to the caller.
func (s *DirectoryService) Customers(ctx context.Context, caller string, adminScope bool) ([]model.Customer, error) {
	key := cache.KeyCustomersByAgent
	if adminScope {
		key = cache.KeyAllCustomers
	}
	return cache.FetchAs[[]model.Customer](ctx, s.queries, caller, key,
		func(ctx context.Context) (any, error) {
			return s.actor.GetCustomers(ctx, caller)
		})
}

// AddCustomer validates and stores a new customer, returning its ID.
func (s *DirectoryService) AddCustomer(ctx context.Context, caller string, req model.AddCustomerRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", apperrors.Validation(err.Error())
	}
	id, err := s.actor.AddCustomer(ctx, caller, req)
	if err != nil {
		return "", err
	}
	return id, s.queries.InvalidateFor(ctx, caller, cache.MutationAddCustomer)
}

// Leads lists leads visible to the caller.
func (s *DirectoryService) Leads(ctx context.Context, caller string, adminScope bool) ([]model.Lead, error) {
	key := cache.KeyLeadsByAgent
	if adminScope {
		key = cache.KeyAllLeads
	}
	return cache.FetchAs[[]model.Lead](ctx, s.queries, caller, key,
		func(ctx context.Context) (any, error) {
			return s.actor.GetLeads(ctx, caller)
		})
}

// AddLead validates and stores a new lead, returning its ID.
func (s *DirectoryService) AddLead(ctx context.Context, caller string, req model.AddLeadRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", apperrors.Validation(err.Error())
	}
	id, err := s.actor.AddLead(ctx, caller, req)
	if err != nil {
		return "", err
	}
	return id, s.queries.InvalidateFor(ctx, caller, cache.MutationAddLead)
}

// FollowUps lists follow-ups visible to the caller.
func (s *DirectoryService) FollowUps(ctx context.Context, caller string, adminScope bool) ([]model.FollowUp, error) {
	key := cache.KeyFollowUpsByAgent
	if adminScope {
		key = cache.KeyAllFollowUps
	}
	return cache.FetchAs[[]model.FollowUp](ctx, s.queries, caller, key,
		func(ctx context.Context) (any, error) {
			return s.actor.GetFollowUps(ctx, caller)
		})
}

// AddFollowUp validates and stores a new follow-up, returning its ID.
func (s *DirectoryService) AddFollowUp(ctx context.Context, caller string, req model.AddFollowUpRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", apperrors.Validation(err.Error())
	}
	id, err := s.actor.AddFollowUp(ctx, caller, req)
	if err != nil {
		return "", err
	}
	return id, s.queries.InvalidateFor(ctx, caller, cache.MutationAddFollowUp)
}
