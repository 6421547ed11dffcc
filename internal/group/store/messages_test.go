package store

import (
	"context"
	"testing"
	"time"

	"banter/internal/group/mocks"
	"banter/internal/group/model"
	"banter/pkg/cache"
	appErrors "banter/pkg/errors"
	"banter/pkg/logger"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMessageStore(t *testing.T, ttl time.Duration) (*MessageStore, *mocks.MockGroupRepository, *appErrors.LastError) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockGroupRepository(ctrl)

	c := cache.New[[]model.GroupMessage](ttl)
	t.Cleanup(c.Close)

	lastErr := appErrors.NewLastError()
	s := NewMessageStore(mockRepo, c, lastErr, logger.Logger{})
	return s, mockRepo, lastErr
}

func TestMessageStore_Get(t *testing.T) {
	t.Run("read-through caches the list", func(t *testing.T) {
		s, mockRepo, _ := newMessageStore(t, 5*time.Minute)
		msgs := []model.GroupMessage{
			{ID: "m1", GroupID: "g1", Sender: "alice@example.com", Content: "hi"},
			{ID: "m2", GroupID: "g1", Sender: "bob@example.com", Content: "hey"},
		}

		mockRepo.EXPECT().GetMessagesByGroup(gomock.Any(), "g1").Return(msgs, nil).Times(1)

		got, err := s.Get(context.Background(), "g1")
		require.NoError(t, err)
		assert.Equal(t, msgs, got)

		// cache hit, no second repo call allowed
		got2, err := s.Get(context.Background(), "g1")
		require.NoError(t, err)
		assert.Equal(t, msgs, got2)
	})

	t.Run("expired entry triggers a fresh store read", func(t *testing.T) {
		s, mockRepo, _ := newMessageStore(t, 20*time.Millisecond)

		first := []model.GroupMessage{{ID: "m1", GroupID: "g1", Content: "hi"}}
		// simulates another process writing to the store while the
		// cached entry ages out
		second := []model.GroupMessage{
			{ID: "m1", GroupID: "g1", Content: "hi"},
			{ID: "m2", GroupID: "g1", Content: "external write"},
		}

		gomock.InOrder(
			mockRepo.EXPECT().GetMessagesByGroup(gomock.Any(), "g1").Return(first, nil),
			mockRepo.EXPECT().GetMessagesByGroup(gomock.Any(), "g1").Return(second, nil),
		)

		got, err := s.Get(context.Background(), "g1")
		require.NoError(t, err)
		require.Len(t, got, 1)

		time.Sleep(30 * time.Millisecond)

		got, err = s.Get(context.Background(), "g1")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "external write", got[1].Content)
	})
}

func TestMessageStore_Append(t *testing.T) {
	t.Run("single append is persisted and visible immediately", func(t *testing.T) {
		s, mockRepo, _ := newMessageStore(t, 5*time.Minute)

		msg := &model.GroupMessage{Sender: "alice@example.com", Content: "hi"}

		gomock.InOrder(
			mockRepo.EXPECT().GetMessagesByGroup(gomock.Any(), "g1").Return([]model.GroupMessage{}, nil),
			mockRepo.EXPECT().InsertMessage(gomock.Any(), msg).Return(nil),
			mockRepo.EXPECT().GetMessagesByGroup(gomock.Any(), "g1").
				DoAndReturn(func(context.Context, string) ([]model.GroupMessage, error) {
					return []model.GroupMessage{*msg}, nil
				}),
		)

		newLen, err := s.Append(context.Background(), "g1", msg)
		require.NoError(t, err)
		assert.Equal(t, 1, newLen)

		// defaults were filled in before persisting
		assert.NotEmpty(t, msg.ID)
		assert.Equal(t, "g1", msg.GroupID)
		assert.False(t, msg.SentAt.IsZero())

		// read-after-write: served from the refreshed cache
		got, err := s.Get(context.Background(), "g1")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "hi", got[0].Content)
	})

	t.Run("multi-item append returns prior plus added", func(t *testing.T) {
		s, mockRepo, _ := newMessageStore(t, 5*time.Minute)

		prior := []model.GroupMessage{{ID: "m0", GroupID: "g1"}}
		m1 := &model.GroupMessage{Content: "one"}
		m2 := &model.GroupMessage{Content: "two"}

		gomock.InOrder(
			mockRepo.EXPECT().GetMessagesByGroup(gomock.Any(), "g1").Return(prior, nil),
			mockRepo.EXPECT().InsertMessage(gomock.Any(), m1).Return(nil),
			mockRepo.EXPECT().InsertMessage(gomock.Any(), m2).Return(nil),
			mockRepo.EXPECT().GetMessagesByGroup(gomock.Any(), "g1").
				Return([]model.GroupMessage{{ID: "m0"}, *m1, *m2}, nil),
		)

		newLen, err := s.Append(context.Background(), "g1", m1, m2)
		require.NoError(t, err)
		assert.Equal(t, 3, newLen)
	})

	t.Run("partial failure surfaces and drops the cache entry", func(t *testing.T) {
		s, mockRepo, lastErr := newMessageStore(t, 5*time.Minute)

		m1 := &model.GroupMessage{Content: "one"}
		m2 := &model.GroupMessage{Content: "two"}
		cause := errors.New("connection reset")

		gomock.InOrder(
			mockRepo.EXPECT().GetMessagesByGroup(gomock.Any(), "g1").Return([]model.GroupMessage{}, nil),
			mockRepo.EXPECT().InsertMessage(gomock.Any(), m1).Return(nil),
			mockRepo.EXPECT().InsertMessage(gomock.Any(), m2).Return(cause),
			// cache was dropped, so the next read reconciles from the store
			mockRepo.EXPECT().GetMessagesByGroup(gomock.Any(), "g1").Return([]model.GroupMessage{*m1}, nil),
		)

		_, err := s.Append(context.Background(), "g1", m1, m2)
		require.Error(t, err)
		assert.Equal(t, appErrors.CodePartialFailure, appErrors.CodeOf(err))
		assert.Contains(t, err.Error(), "1 of 2")

		rec := lastErr.Last()
		require.NotNil(t, rec)
		assert.Equal(t, "messages.append", rec.Op)

		got, err := s.Get(context.Background(), "g1")
		require.NoError(t, err)
		require.Len(t, got, 1)
	})

	t.Run("empty append returns current length", func(t *testing.T) {
		s, mockRepo, _ := newMessageStore(t, 5*time.Minute)

		mockRepo.EXPECT().GetMessagesByGroup(gomock.Any(), "g1").
			Return([]model.GroupMessage{{ID: "m1"}}, nil)

		newLen, err := s.Append(context.Background(), "g1")
		require.NoError(t, err)
		assert.Equal(t, 1, newLen)
	})

	t.Run("empty group id rejected", func(t *testing.T) {
		s, _, _ := newMessageStore(t, 5*time.Minute)

		_, err := s.Append(context.Background(), "", &model.GroupMessage{Content: "hi"})
		assert.True(t, appErrors.Is(err, appErrors.ErrEmptyGroupID))
	})
}

func TestMessageStore_Set(t *testing.T) {
	s, mockRepo, _ := newMessageStore(t, 5*time.Minute)

	restored := []model.GroupMessage{{ID: "m1", GroupID: "g1", Content: "imported"}}
	s.Set("g1", restored)

	// served from cache without any store read
	got, err := s.Get(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, restored, got)

	_ = mockRepo // no expectations: Set must not touch the durable store
}

func TestMessageStore_Delete(t *testing.T) {
	t.Run("deletes all group messages and evicts", func(t *testing.T) {
		s, mockRepo, _ := newMessageStore(t, 5*time.Minute)

		s.Set("g1", []model.GroupMessage{{ID: "m1"}})

		mockRepo.EXPECT().DeleteMessagesByGroup(gomock.Any(), "g1").Return(nil)
		require.NoError(t, s.Delete(context.Background(), "g1"))

		mockRepo.EXPECT().GetMessagesByGroup(gomock.Any(), "g1").Return([]model.GroupMessage{}, nil)
		got, err := s.Get(context.Background(), "g1")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("failure still evicts so cache cannot mask it", func(t *testing.T) {
		s, mockRepo, lastErr := newMessageStore(t, 5*time.Minute)

		s.Set("g1", []model.GroupMessage{{ID: "m1"}})

		mockRepo.EXPECT().DeleteMessagesByGroup(gomock.Any(), "g1").Return(errors.New("db down"))
		require.Error(t, s.Delete(context.Background(), "g1"))
		assert.NotNil(t, lastErr.Last())

		mockRepo.EXPECT().GetMessagesByGroup(gomock.Any(), "g1").
			Return([]model.GroupMessage{{ID: "m1"}}, nil)
		got, err := s.Get(context.Background(), "g1")
		require.NoError(t, err)
		require.Len(t, got, 1)
	})
}

func TestMessageStore_ToggleReaction(t *testing.T) {
	t.Run("adds then removes a reaction", func(t *testing.T) {
		s, mockRepo, _ := newMessageStore(t, 5*time.Minute)

		msg := &model.GroupMessage{ID: "m1", GroupID: "g1", Content: "hi"}

		var saved map[string][]model.Reaction
		mockRepo.EXPECT().GetMessageByID(gomock.Any(), "m1").Return(msg, nil)
		mockRepo.EXPECT().UpdateMessageReactions(gomock.Any(), "m1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, r map[string][]model.Reaction) error {
				saved = r
				return nil
			})

		err := s.ToggleReaction(context.Background(), "g1", "m1", "👍", "alice@example.com", "Alice")
		require.NoError(t, err)
		require.Len(t, saved["👍"], 1)
		assert.Equal(t, "alice@example.com", saved["👍"][0].UserEmail)
		assert.Equal(t, "Alice", saved["👍"][0].DisplayName)
		assert.False(t, saved["👍"][0].ReactedAt.IsZero())

		// toggling again removes the entry and the emptied emoji key
		withReaction := &model.GroupMessage{ID: "m1", GroupID: "g1", Reactions: saved}
		mockRepo.EXPECT().GetMessageByID(gomock.Any(), "m1").Return(withReaction, nil)
		mockRepo.EXPECT().UpdateMessageReactions(gomock.Any(), "m1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, r map[string][]model.Reaction) error {
				saved = r
				return nil
			})

		err = s.ToggleReaction(context.Background(), "g1", "m1", "👍", "alice@example.com", "Alice")
		require.NoError(t, err)
		_, ok := saved["👍"]
		assert.False(t, ok)
	})

	t.Run("preserves order of remaining reactions", func(t *testing.T) {
		s, mockRepo, _ := newMessageStore(t, 5*time.Minute)

		msg := &model.GroupMessage{
			ID: "m1", GroupID: "g1",
			Reactions: map[string][]model.Reaction{
				"🎉": {
					{UserEmail: "alice@example.com", DisplayName: "Alice"},
					{UserEmail: "bob@example.com", DisplayName: "Bob"},
					{UserEmail: "carol@example.com", DisplayName: "Carol"},
				},
			},
		}

		var saved map[string][]model.Reaction
		mockRepo.EXPECT().GetMessageByID(gomock.Any(), "m1").Return(msg, nil)
		mockRepo.EXPECT().UpdateMessageReactions(gomock.Any(), "m1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, r map[string][]model.Reaction) error {
				saved = r
				return nil
			})

		err := s.ToggleReaction(context.Background(), "g1", "m1", "🎉", "bob@example.com", "Bob")
		require.NoError(t, err)
		require.Len(t, saved["🎉"], 2)
		assert.Equal(t, "alice@example.com", saved["🎉"][0].UserEmail)
		assert.Equal(t, "carol@example.com", saved["🎉"][1].UserEmail)
	})

	t.Run("unknown message", func(t *testing.T) {
		s, mockRepo, _ := newMessageStore(t, 5*time.Minute)

		mockRepo.EXPECT().GetMessageByID(gomock.Any(), "nope").Return(nil, nil)

		err := s.ToggleReaction(context.Background(), "g1", "nope", "👍", "alice@example.com", "Alice")
		assert.True(t, appErrors.Is(err, appErrors.ErrMessageNotFound))
	})

	t.Run("message from another group is not found", func(t *testing.T) {
		s, mockRepo, _ := newMessageStore(t, 5*time.Minute)

		other := &model.GroupMessage{ID: "m1", GroupID: "g2"}
		mockRepo.EXPECT().GetMessageByID(gomock.Any(), "m1").Return(other, nil)

		err := s.ToggleReaction(context.Background(), "g1", "m1", "👍", "alice@example.com", "Alice")
		assert.True(t, appErrors.Is(err, appErrors.ErrMessageNotFound))
	})
}

func TestMessageStore_AddTranslation(t *testing.T) {
	s, mockRepo, _ := newMessageStore(t, 5*time.Minute)

	msg := &model.GroupMessage{ID: "m1", GroupID: "g1", Content: "hello"}

	var saved map[string]string
	mockRepo.EXPECT().GetMessageByID(gomock.Any(), "m1").Return(msg, nil)
	mockRepo.EXPECT().UpdateMessageTranslations(gomock.Any(), "m1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, tr map[string]string) error {
			saved = tr
			return nil
		})

	err := s.AddTranslation(context.Background(), "g1", "m1", "fr", "bonjour")
	require.NoError(t, err)
	assert.Equal(t, "bonjour", saved["fr"])
}

func TestMessageStore_DeleteMessage(t *testing.T) {
	s, mockRepo, _ := newMessageStore(t, 5*time.Minute)

	s.Set("g1", []model.GroupMessage{{ID: "m1"}, {ID: "m2"}})

	mockRepo.EXPECT().DeleteMessage(gomock.Any(), "m1").Return(nil)
	require.NoError(t, s.DeleteMessage(context.Background(), "g1", "m1"))

	// entry evicted, next read reconciles
	mockRepo.EXPECT().GetMessagesByGroup(gomock.Any(), "g1").
		Return([]model.GroupMessage{{ID: "m2"}}, nil)
	got, err := s.Get(context.Background(), "g1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "m2", got[0].ID)
}
