package store

import (
	"context"
	"time"

	"banter/internal/dm"
	"banter/internal/dm/model"
	"banter/pkg/cache"
	appErrors "banter/pkg/errors"
	"banter/pkg/logger"

	"github.com/google/uuid"
)

// ConversationStore makes direct-message threads addressable by
// conversation identifier, with the same read-through cache and append
// contract as the group message accessor.
type ConversationStore struct {
	repo    dm.DMRepository
	cache   *cache.Cache[[]model.DirectMessage]
	lastErr *appErrors.LastError
	logger  *logger.Logger
}

func NewConversationStore(repo dm.DMRepository, c *cache.Cache[[]model.DirectMessage], lastErr *appErrors.LastError, logger logger.Logger) *ConversationStore {
	return &ConversationStore{
		repo:    repo,
		cache:   c,
		lastErr: lastErr,
		logger:  &logger,
	}
}

func (s *ConversationStore) Get(ctx context.Context, conversationID string) ([]model.DirectMessage, error) {
	if msgs, ok := s.cache.Get(conversationID); ok {
		return msgs, nil
	}

	msgs, err := s.repo.GetMessagesByConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(conversationID, msgs)
	return msgs, nil
}

// Set overwrites the cache entry without touching the durable store.
func (s *ConversationStore) Set(conversationID string, msgs []model.DirectMessage) {
	s.cache.Set(conversationID, msgs)
}

// Append persists each message individually and refreshes the cache
// before returning the apparent new length. Messages without a
// conversation id get one derived from their sender/recipient pair; a
// message whose pair resolves to a different conversation is rejected
// before anything is persisted.
func (s *ConversationStore) Append(ctx context.Context, conversationID string, msgs ...*model.DirectMessage) (int, error) {
	if conversationID == "" {
		return 0, s.fail("dm.append", appErrors.ErrEmptyConversationID, nil)
	}
	if len(msgs) == 0 {
		prior, err := s.Get(ctx, conversationID)
		return len(prior), err
	}

	for _, m := range msgs {
		if derived := model.ConversationID(m.Sender, m.Recipient); derived != conversationID {
			return 0, s.fail("dm.append",
				appErrors.InvalidArg("message participants do not match conversation"),
				map[string]any{"conversation_id": conversationID, "derived": derived})
		}
	}

	prior, err := s.Get(ctx, conversationID)
	if err != nil {
		return 0, s.fail("dm.append", err, map[string]any{"conversation_id": conversationID})
	}

	for i, m := range msgs {
		if m.ID == "" {
			m.ID = uuid.NewString()
		}
		m.ConversationID = conversationID
		if m.SentAt.IsZero() {
			m.SentAt = time.Now().UTC()
		}

		if err := s.repo.InsertMessage(ctx, m); err != nil {
			s.cache.Delete(conversationID)
			return 0, s.fail("dm.append",
				appErrors.ErrPartialAppend(i, len(msgs), err),
				map[string]any{"conversation_id": conversationID})
		}
	}

	fresh, err := s.repo.GetMessagesByConversation(ctx, conversationID)
	if err != nil {
		s.cache.Delete(conversationID)
		s.logger.Warn("cache refresh after append failed", "conversation_id", conversationID, "err", err)
	} else {
		s.cache.Set(conversationID, fresh)
	}

	return len(prior) + len(msgs), nil
}

func (s *ConversationStore) Delete(ctx context.Context, conversationID string) error {
	err := s.repo.DeleteMessagesByConversation(ctx, conversationID)
	s.cache.Delete(conversationID)
	if err != nil {
		return s.fail("dm.delete", err, map[string]any{"conversation_id": conversationID})
	}
	return nil
}

// Has checks the durable store directly, not the cache.
func (s *ConversationStore) Has(ctx context.Context, conversationID string) (bool, error) {
	return s.repo.ConversationExists(ctx, conversationID)
}

func (s *ConversationStore) AddTranslation(ctx context.Context, conversationID, messageID, lang, text string) error {
	msgs, err := s.repo.GetMessagesByConversation(ctx, conversationID)
	if err != nil {
		return s.fail("dm.addTranslation", err, map[string]any{"conversation_id": conversationID})
	}

	var target *model.DirectMessage
	for i := range msgs {
		if msgs[i].ID == messageID {
			target = &msgs[i]
			break
		}
	}
	if target == nil {
		return s.fail("dm.addTranslation", appErrors.ErrMessageNotFound,
			map[string]any{"conversation_id": conversationID, "message_id": messageID})
	}

	translations := target.Translations
	if translations == nil {
		translations = make(map[string]string)
	}
	translations[lang] = text

	if err := s.repo.UpdateMessageTranslations(ctx, messageID, translations); err != nil {
		s.cache.Delete(conversationID)
		return s.fail("dm.addTranslation", err,
			map[string]any{"conversation_id": conversationID, "message_id": messageID})
	}

	s.cache.Delete(conversationID)
	return nil
}

func (s *ConversationStore) Invalidate(conversationID string) {
	s.cache.Delete(conversationID)
}

func (s *ConversationStore) InvalidateAll() {
	s.cache.Clear()
}

func (s *ConversationStore) fail(op string, err error, ctx map[string]any) error {
	s.lastErr.Record(op, err, ctx)
	return err
}
