package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/keyhaven/crm-ui-api/internal/domain/auth"
	"github.com/keyhaven/crm-ui-api/internal/domain/model"
)

func TestExportCustomers_CSVAttachment(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, ctrl)
	cookie := srv.signIn(t, domainauth.RoleAdmin)

	srv.actor.EXPECT().GetCustomers(gomock.Any(), testPrincipal).Return([]model.Customer{
		{
			Name:           "Rao, \"RK\"",
			Mobile:         "9876500001",
			Email:          "rk.rao@example.com",
			Requirement:    model.RequirementRWAFlat,
			AssignedAgent:  "9876543210",
			FollowUpStatus: "pending",
			CreatedAt:      time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/export/customers", nil)
	req.AddCookie(cookie)
	rec := srv.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	disposition := rec.Header().Get("Content-Disposition")
	require.Contains(t, disposition, "attachment")
	require.Contains(t, disposition, "customers-")
	require.Contains(t, disposition, ".csv")

	body := rec.Body.Bytes()
	require.True(t, len(body) > 3)
	require.Equal(t, []byte{0xEF, 0xBB, 0xBF}, body[:3], "BOM prefix")

	text := string(body[3:])
	lines := strings.Split(strings.TrimRight(text, "\r\n"), "\r\n")
	require.Len(t, lines, 2)
	require.Equal(t, "Name,Mobile,Email,Requirement,Assigned Agent,Follow-up Status,Created At", lines[0])
	require.Contains(t, lines[1], `"Rao, ""RK"""`)
	require.Contains(t, lines[1], "9876500001")
}

func TestExportLeads_EmptyDirectoryStillWritesHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, ctrl)
	cookie := srv.signIn(t, domainauth.RoleAdmin)

	srv.actor.EXPECT().GetLeads(gomock.Any(), testPrincipal).Return([]model.Lead{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/export/leads", nil)
	req.AddCookie(cookie)
	rec := srv.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	text := strings.TrimPrefix(rec.Body.String(), "\ufeff")
	require.Equal(t,
		"Name,Mobile,Email,Status,Requirement,Assigned Agent,Description,Remarks,Created At\r\n",
		text)
}

func TestExportFollowUps_UsesAdminScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, ctrl)
	cookie := srv.signIn(t, domainauth.RoleAdmin)

	srv.actor.EXPECT().GetFollowUps(gomock.Any(), testPrincipal).Return([]model.FollowUp{
		{
			ID:           "fu-1",
			LinkedID:     "lead-1",
			Type:         "lead",
			Agent:        "9876543210",
			FollowUpTime: time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC),
			Status:       "open",
			CreatedAt:    time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/export/followups", nil)
	req.AddCookie(cookie)
	rec := srv.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "lead-1")
	require.Contains(t, rec.Body.String(), "2025-06-02T15:00:00Z")
}
