// Package mocks provides mock implementations for testing the CRM front-end service.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our port interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	actor := mocks.NewMockActorClient(ctrl)
//	actor.EXPECT().GetCallerUserProfile(gomock.Any(), "caller-1").Return(&profile, nil)
package mocks

// Generate mock for ActorClient interface from internal/ports package.
// This creates MockActorClient with methods for every actor RPC operation.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=actor_client_mock.go github.com/keyhaven/crm-ui-api/internal/ports ActorClient
