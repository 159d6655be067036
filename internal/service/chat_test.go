package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/keyhaven/crm-ui-api/internal/cache"
	"github.com/keyhaven/crm-ui-api/internal/domain/model"
	apperrors "github.com/keyhaven/crm-ui-api/internal/errors"
	"github.com/keyhaven/crm-ui-api/internal/mocks"
	"github.com/keyhaven/crm-ui-api/internal/testutil"
)

func newChatService(t *testing.T) (*mocks.MockActorClient, *testutil.MemoryCacheRepo, *ChatService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	actor := mocks.NewMockActorClient(ctrl)
	repo := testutil.NewMemoryCacheRepo()
	queries := cache.New(repo, testutil.Logger())

	return actor, repo, NewChatService(actor, queries)
}

func TestChatService_Messages_Cached(t *testing.T) {
	t.Parallel()
	actor, _, svc := newChatService(t)
	ctx := context.Background()

	msgs := []model.WhatsAppMessage{{
		ID:          "msg-1",
		Participant: model.ChatParticipant{Kind: model.ParticipantCustomer, Mobile: "9812345678"},
		Content:     "Is the flat still available?",
		Direction:   model.DirectionReceived,
		Status:      model.MessageStatusRead,
	}}
	actor.EXPECT().GetWhatsAppMessages(gomock.Any(), testCaller).Return(msgs, nil).Times(1)

	for range 2 {
		got, err := svc.Messages(ctx, testCaller)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, model.DirectionReceived, got[0].Direction)
	}
}

func TestChatService_AddMessage_Invalidation(t *testing.T) {
	t.Parallel()
	actor, repo, svc := newChatService(t)

	req := model.AddWhatsAppMessageRequest{
		Participant: model.ChatParticipant{Kind: model.ParticipantLead, Mobile: "9823456789"},
		Content:     "Sharing the brochure",
		Direction:   model.DirectionSent,
		MessageType: "document",
		Status:      model.MessageStatusPending,
	}
	actor.EXPECT().AddWhatsAppMessage(gomock.Any(), testCaller, req).Return("msg-2", nil)

	id, err := svc.AddMessage(context.Background(), testCaller, req)
	require.NoError(t, err)
	assert.Equal(t, "msg-2", id)
	assert.Equal(t, storageKeys(testCaller, cache.KeyWhatsAppMessages), repo.Deletions())
}

func TestChatService_AddMessage_RejectsUnknownParticipant(t *testing.T) {
	t.Parallel()
	_, _, svc := newChatService(t)

	req := model.AddWhatsAppMessageRequest{
		Participant: model.ChatParticipant{Kind: "bot", Mobile: "9823456789"},
		Content:     "hi",
		Direction:   model.DirectionSent,
	}
	_, err := svc.AddMessage(context.Background(), testCaller, req)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestChatService_AddCallLog_Invalidation(t *testing.T) {
	t.Parallel()
	actor, repo, svc := newChatService(t)

	req := model.AddCallLogRequest{
		Participant: model.ChatParticipant{Kind: model.ParticipantCustomer, Mobile: "9812345678"},
		Duration:    3 * time.Minute,
		CallType:    "outgoing",
	}
	actor.EXPECT().AddCallLog(gomock.Any(), testCaller, req).Return("call-1", nil)

	id, err := svc.AddCallLog(context.Background(), testCaller, req)
	require.NoError(t, err)
	assert.Equal(t, "call-1", id)
	assert.Equal(t, storageKeys(testCaller, cache.KeyCallLogs), repo.Deletions())
}
