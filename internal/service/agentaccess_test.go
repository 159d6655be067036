package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/keyhaven/crm-ui-api/internal/cache"
	"github.com/keyhaven/crm-ui-api/internal/domain/approval"
	"github.com/keyhaven/crm-ui-api/internal/domain/model"
	apperrors "github.com/keyhaven/crm-ui-api/internal/errors"
	"github.com/keyhaven/crm-ui-api/internal/mocks"
	"github.com/keyhaven/crm-ui-api/internal/testutil"
)

func newAccessGate(t *testing.T) (*mocks.MockActorClient, *testutil.MemoryCacheRepo, *AgentAccessGate) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	actor := mocks.NewMockActorClient(ctrl)
	repo := testutil.NewMemoryCacheRepo()
	queries := cache.New(repo, testutil.Logger())

	return actor, repo, NewAgentAccessGate(actor, queries, testutil.Logger())
}

func TestDecideAccess(t *testing.T) {
	t.Parallel()

	fetched := QueryResult{Fetched: true}
	failed := QueryResult{Fetched: true, Err: errors.New("boom")}

	tests := []struct {
		name       string
		approvedQ  QueryResult
		approved   bool
		hasProfile bool
		want       AccessOutcome
	}{
		{name: "unfetched approval keeps loading", want: AccessLoading},
		{name: "failed approval query is an error", approvedQ: failed, want: AccessError},
		{name: "not approved is a hard stop", approvedQ: fetched, want: AccessApprovalNotice},
		{
			// Approval outranks a stale cached profile.
			name:       "not approved with profile still shows notice",
			approvedQ:  fetched,
			hasProfile: true,
			want:       AccessApprovalNotice,
		},
		{
			name:      "approved without profile requires face login",
			approvedQ: fetched,
			approved:  true,
			want:      AccessLoginRequired,
		},
		{
			name:       "approved with live profile enters dashboard",
			approvedQ:  fetched,
			approved:   true,
			hasProfile: true,
			want:       AccessDashboard,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := DecideAccess(tc.approvedQ, tc.approved, tc.hasProfile)
			assert.Equal(t, tc.want, got.Outcome)
		})
	}
}

func TestAgentAccessGate_Evaluate_Dashboard(t *testing.T) {
	t.Parallel()
	actor, _, gate := newAccessGate(t)

	profile := &model.AgentProfile{
		Principal: testCaller,
		Name:      "Asha",
		Mobile:    "9876543210",
		Status:    approval.StatusApproved,
	}
	actor.EXPECT().IsCallerApproved(gomock.Any(), testCaller).Return(true, nil)
	actor.EXPECT().GetAgentProfileByCaller(gomock.Any(), testCaller).Return(profile, nil)

	result, err := gate.Evaluate(context.Background(), testCaller)
	require.NoError(t, err)
	assert.Equal(t, AccessDashboard, result.Outcome)
	require.NotNil(t, result.Profile)
	assert.Equal(t, "9876543210", result.Profile.Mobile)
}

func TestAgentAccessGate_Evaluate_ApprovedWithoutLoginShowsLoginForm(t *testing.T) {
	t.Parallel()
	actor, _, gate := newAccessGate(t)

	actor.EXPECT().IsCallerApproved(gomock.Any(), testCaller).Return(true, nil)
	// The actor refuses the profile when no face-login session is live.
	actor.EXPECT().GetAgentProfileByCaller(gomock.Any(), testCaller).
		Return(nil, apperrors.Unauthorized("no active session"))

	result, err := gate.Evaluate(context.Background(), testCaller)
	require.NoError(t, err)
	assert.Equal(t, AccessLoginRequired, result.Outcome)
	assert.Nil(t, result.Profile)
}

func TestAgentAccessGate_Evaluate_NotApprovedSkipsProfileQuery(t *testing.T) {
	t.Parallel()
	actor, _, gate := newAccessGate(t)

	// No GetAgentProfileByCaller expectation: fetching it would fail the test.
	actor.EXPECT().IsCallerApproved(gomock.Any(), testCaller).Return(false, nil)

	result, err := gate.Evaluate(context.Background(), testCaller)
	require.NoError(t, err)
	assert.Equal(t, AccessApprovalNotice, result.Outcome)
}

func TestAgentAccessGate_Evaluate_FailsClosedOnApprovalError(t *testing.T) {
	t.Parallel()
	actor, _, gate := newAccessGate(t)

	actor.EXPECT().IsCallerApproved(gomock.Any(), testCaller).
		Return(false, apperrors.Unavailable("actor down"))

	_, err := gate.Evaluate(context.Background(), testCaller)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnavailable(err))
}

func TestAgentAccessGate_Evaluate_TransportErrorOnProfilePropagates(t *testing.T) {
	t.Parallel()
	actor, _, gate := newAccessGate(t)

	actor.EXPECT().IsCallerApproved(gomock.Any(), testCaller).Return(true, nil)
	actor.EXPECT().GetAgentProfileByCaller(gomock.Any(), testCaller).
		Return(nil, apperrors.Unavailable("actor down"))

	_, err := gate.Evaluate(context.Background(), testCaller)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnavailable(err))
}

func TestAgentAccessGate_Retry_RefetchesBothGateQueries(t *testing.T) {
	t.Parallel()
	_, repo, gate := newAccessGate(t)

	require.NoError(t, gate.Retry(context.Background(), testCaller))

	assert.ElementsMatch(t, []string{
		"q:" + testCaller + ":" + string(cache.KeyIsCallerApproved),
		"q:" + testCaller + ":" + string(cache.KeyAgentProfileByCaller),
	}, repo.Deletions())
}
