package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/keyhaven/crm-ui-api/internal/domain/auth"
	"github.com/keyhaven/crm-ui-api/internal/domain/model"
)

func TestProfileCurrent_NoneSavedYet(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, ctrl)
	cookie := srv.signIn(t, domainauth.RoleAgent)

	srv.actor.EXPECT().GetCallerUserProfile(gomock.Any(), testPrincipal).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.AddCookie(cookie)
	rec := srv.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"profile":null}`, rec.Body.String())
}

func TestProfileSave_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, ctrl)
	cookie := srv.signIn(t, domainauth.RoleAgent)

	profile := model.UserProfile{Name: "Asha Verma", Email: "asha.verma@example.com", Mobile: "9876543210"}
	srv.actor.EXPECT().SaveCallerUserProfile(gomock.Any(), testPrincipal, profile).Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/api/profile", jsonBody(t, profile))
	req.AddCookie(cookie)
	rec := srv.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestProfileSave_BadMobileIs400(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, ctrl)
	cookie := srv.signIn(t, domainauth.RoleAgent)

	profile := model.UserProfile{Name: "Asha Verma", Email: "asha.verma@example.com", Mobile: "12"}
	req := httptest.NewRequest(http.MethodPut, "/api/profile", jsonBody(t, profile))
	req.AddCookie(cookie)
	rec := srv.do(req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "10-digit")
}
