package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/keyhaven/crm-ui-api/internal/domain/auth"
	"github.com/keyhaven/crm-ui-api/internal/domain/model"
	apperrors "github.com/keyhaven/crm-ui-api/internal/errors"
	"github.com/keyhaven/crm-ui-api/internal/service"
)

func decodeStartup(t *testing.T, rec *httptest.ResponseRecorder) service.StartupResult {
	t.Helper()
	var result service.StartupResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	return result
}

func TestStartup_AnonymousCallerGetsAuthPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, ctrl)

	rec := srv.do(httptest.NewRequest(http.MethodGet, "/api/startup", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	result := decodeStartup(t, rec)
	require.Equal(t, service.StartupReady, result.State)
	require.Equal(t, service.ViewAuthPage, result.View)
}

func TestStartup_AdminWithProfileGetsAdminDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, ctrl)
	cookie := srv.signIn(t, domainauth.RoleAdmin)

	profile := &model.UserProfile{Name: "Asha Verma", Email: "asha.verma@example.com", Mobile: "9876543210"}
	srv.actor.EXPECT().GetCallerUserProfile(gomock.Any(), testPrincipal).Return(profile, nil)
	srv.actor.EXPECT().IsCallerAdmin(gomock.Any(), testPrincipal).Return(true, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/startup", nil)
	req.AddCookie(cookie)
	rec := srv.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	result := decodeStartup(t, rec)
	require.Equal(t, service.StartupReady, result.State)
	require.Equal(t, service.ViewAdminDashboard, result.View)
	require.True(t, result.IsAdmin)
	require.NotNil(t, result.Profile)
	require.Equal(t, "Asha Verma", result.Profile.Name)
}

func TestStartup_MissingProfileGetsProfileSetup(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, ctrl)
	cookie := srv.signIn(t, domainauth.RoleAgent)

	srv.actor.EXPECT().GetCallerUserProfile(gomock.Any(), testPrincipal).Return(nil, nil)
	srv.actor.EXPECT().IsCallerAdmin(gomock.Any(), testPrincipal).Return(false, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/startup", nil)
	req.AddCookie(cookie)
	rec := srv.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	result := decodeStartup(t, rec)
	require.Equal(t, service.ViewProfileSetup, result.View)
}

func TestStartup_ActorUnavailableIs503(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, ctrl)
	cookie := srv.signIn(t, domainauth.RoleAgent)

	srv.actor.EXPECT().GetCallerUserProfile(gomock.Any(), testPrincipal).
		Return(nil, apperrors.Unavailable("actor gateway unreachable"))
	srv.actor.EXPECT().IsCallerAdmin(gomock.Any(), testPrincipal).Return(false, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/startup", nil)
	req.AddCookie(cookie)
	rec := srv.do(req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestStartupRetry_RefetchesBothQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, ctrl)
	cookie := srv.signIn(t, domainauth.RoleAgent)

	profile := &model.UserProfile{Name: "Asha Verma", Email: "asha.verma@example.com", Mobile: "9876543210"}
	srv.actor.EXPECT().GetCallerUserProfile(gomock.Any(), testPrincipal).Return(profile, nil).Times(2)
	srv.actor.EXPECT().IsCallerAdmin(gomock.Any(), testPrincipal).Return(false, nil).Times(2)

	get := httptest.NewRequest(http.MethodGet, "/api/startup", nil)
	get.AddCookie(cookie)
	require.Equal(t, http.StatusOK, srv.do(get).Code)

	retry := httptest.NewRequest(http.MethodPost, "/api/startup/retry", nil)
	retry.AddCookie(cookie)
	rec := srv.do(retry)

	require.Equal(t, http.StatusOK, rec.Code)
	result := decodeStartup(t, rec)
	require.Equal(t, service.ViewAgentDashboard, result.View)
}

func decodeAccess(t *testing.T, rec *httptest.ResponseRecorder) service.AccessResult {
	t.Helper()
	var result service.AccessResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	return result
}

func TestAgentAccess_NotApprovedShowsNotice(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, ctrl)
	cookie := srv.signIn(t, domainauth.RoleAgent)

	srv.actor.EXPECT().IsCallerApproved(gomock.Any(), testPrincipal).Return(false, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/agent/access", nil)
	req.AddCookie(cookie)
	rec := srv.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, service.AccessApprovalNotice, decodeAccess(t, rec).Outcome)
}

func TestAgentAccess_ApprovedWithoutFaceLoginRequiresLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, ctrl)
	cookie := srv.signIn(t, domainauth.RoleAgent)

	srv.actor.EXPECT().IsCallerApproved(gomock.Any(), testPrincipal).Return(true, nil)
	srv.actor.EXPECT().GetAgentProfileByCaller(gomock.Any(), testPrincipal).
		Return(nil, apperrors.Unauthorized("no active session"))

	req := httptest.NewRequest(http.MethodGet, "/api/agent/access", nil)
	req.AddCookie(cookie)
	rec := srv.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, service.AccessLoginRequired, decodeAccess(t, rec).Outcome)
}

func TestAgentAccess_LiveSessionGetsDashboardWithProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, ctrl)
	cookie := srv.signIn(t, domainauth.RoleAgent)

	agent := &model.AgentProfile{Principal: testPrincipal, Name: "Asha Verma", Mobile: "9876543210"}
	srv.actor.EXPECT().IsCallerApproved(gomock.Any(), testPrincipal).Return(true, nil)
	srv.actor.EXPECT().GetAgentProfileByCaller(gomock.Any(), testPrincipal).Return(agent, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/agent/access", nil)
	req.AddCookie(cookie)
	rec := srv.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	result := decodeAccess(t, rec)
	require.Equal(t, service.AccessDashboard, result.Outcome)
	require.NotNil(t, result.Profile)
	require.Equal(t, testPrincipal, result.Profile.Principal)
}
