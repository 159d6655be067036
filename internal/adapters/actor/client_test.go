package actor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keyhaven/crm-ui-api/internal/domain/approval"
	"github.com/keyhaven/crm-ui-api/internal/domain/model"
	apperrors "github.com/keyhaven/crm-ui-api/internal/errors"
	"github.com/keyhaven/crm-ui-api/internal/testutil"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		GatewayURL: server.URL,
		RetryDelay: time.Millisecond,
		Logger:     testutil.Logger(),
	})
	require.NoError(t, err)
	return client, server
}

func TestNewClient_RequiresGatewayURL(t *testing.T) {
	t.Parallel()
	_, err := NewClient(Config{})
	require.Error(t, err)
}

func TestGetCallerUserProfile_DecodesProfile(t *testing.T) {
	t.Parallel()
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/getCallerUserProfile", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "principal-1", r.Header.Get("X-Caller-Principal"))
		_ = json.NewEncoder(w).Encode(model.UserProfile{Name: "Asha", Email: "a@x.com", Mobile: "9999999999"})
	}))

	got, err := client.GetCallerUserProfile(context.Background(), "principal-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Asha", got.Name)
}

func TestGetCallerUserProfile_NullMeansNoProfile(t *testing.T) {
	t.Parallel()
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("null"))
	}))

	got, err := client.GetCallerUserProfile(context.Background(), "principal-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCall_RetriesTransportFaultOnce(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte("true"))
	}))

	ok, err := client.IsCallerAdmin(context.Background(), "principal-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int32(2), hits.Load())
}

func TestCall_ExhaustedRetriesReportUnavailable(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.IsCallerAdmin(context.Background(), "principal-1")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnavailable(err), "got %v", err)
	assert.Equal(t, int32(2), hits.Load(), "exactly one retry")
}

func TestCall_DomainErrorNotRetried(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Mobile number already registered"})
	}))

	err := client.RegisterAgent(context.Background(), "principal-1", model.RegisterAgentRequest{
		Name: "Asha", Mobile: "9999999999", Email: "a@x.com", FaceImage: []byte{1},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err), "got %v", err)
	assert.Equal(t, int32(1), hits.Load(), "domain rejection must not retry")
}

func TestListApprovals_ToleratesTaggedStatusShape(t *testing.T) {
	t.Parallel()
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[
			{"principal":"p1","status":"approved"},
			{"principal":"p2","status":{"pending":null}}
		]`))
	}))

	got, err := client.ListApprovals(context.Background(), "admin-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, approval.StatusApproved, got[0].Status)
	assert.Equal(t, approval.StatusPending, got[1].Status)
}

func TestApproveAgent_SendsMobile(t *testing.T) {
	t.Parallel()
	var body struct {
		Mobile string `json:"mobile"`
	}
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/approveAgent", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.ApproveAgent(context.Background(), "admin-1", "9999999999"))
	assert.Equal(t, "9999999999", body.Mobile)
}
