package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/keyhaven/crm-ui-api/internal/domain/auth"
	"github.com/keyhaven/crm-ui-api/internal/domain/model"
)

func TestWhatsAppMessages_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, ctrl)
	cookie := srv.signIn(t, domainauth.RoleAgent)

	srv.actor.EXPECT().GetWhatsAppMessages(gomock.Any(), testPrincipal).Return([]model.WhatsAppMessage{
		{
			ID:          "msg-1",
			Participant: model.ChatParticipant{Kind: model.ParticipantCustomer, Mobile: "9876500001"},
			Content:     "When can we visit?",
			Direction:   model.DirectionReceived,
			MessageType: "text",
			Status:      model.MessageStatusRead,
			Timestamp:   time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/whatsapp/messages", nil)
	req.AddCookie(cookie)
	rec := srv.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "When can we visit?")
}

func TestAddWhatsAppMessage_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, ctrl)
	cookie := srv.signIn(t, domainauth.RoleAgent)

	add := model.AddWhatsAppMessageRequest{
		Participant: model.ChatParticipant{Kind: model.ParticipantLead, Mobile: "9876500002"},
		Content:     "Sharing the brochure",
		Direction:   model.DirectionSent,
		MessageType: "text",
		Status:      model.MessageStatusPending,
	}
	srv.actor.EXPECT().AddWhatsAppMessage(gomock.Any(), testPrincipal, add).Return("msg-2", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/whatsapp/messages", jsonBody(t, add))
	req.AddCookie(cookie)
	rec := srv.do(req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"id":"msg-2"}`, rec.Body.String())
}

func TestAddWhatsAppMessage_BadParticipantIs400(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, ctrl)
	cookie := srv.signIn(t, domainauth.RoleAgent)

	add := model.AddWhatsAppMessageRequest{
		Participant: model.ChatParticipant{Kind: "stranger", Mobile: "9876500002"},
		Content:     "hello",
		Direction:   model.DirectionSent,
	}
	req := httptest.NewRequest(http.MethodPost, "/api/whatsapp/messages", jsonBody(t, add))
	req.AddCookie(cookie)
	rec := srv.do(req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "unknown participant kind")
}

func TestAddCallLog_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, ctrl)
	cookie := srv.signIn(t, domainauth.RoleAgent)

	add := model.AddCallLogRequest{
		Participant: model.ChatParticipant{Kind: model.ParticipantCustomer, Mobile: "9876500001"},
		Duration:    90 * time.Second,
		CallType:    "outgoing",
	}
	srv.actor.EXPECT().AddCallLog(gomock.Any(), testPrincipal, add).Return("call-1", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/calls", jsonBody(t, add))
	req.AddCookie(cookie)
	rec := srv.do(req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"id":"call-1"}`, rec.Body.String())
}

func TestCallLogs_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, ctrl)
	cookie := srv.signIn(t, domainauth.RoleAgent)

	srv.actor.EXPECT().GetCallLogs(gomock.Any(), testPrincipal).Return([]model.CallLog{
		{
			ID:          "call-1",
			Participant: model.ChatParticipant{Kind: model.ParticipantCustomer, Mobile: "9876500001"},
			Duration:    90 * time.Second,
			CallType:    "outgoing",
			Timestamp:   time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC),
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/calls", nil)
	req.AddCookie(cookie)
	rec := srv.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"callType":"outgoing"`)
}
