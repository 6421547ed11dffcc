package store

import (
	"context"
	"time"

	"banter/internal/group"
	"banter/internal/group/model"
	"banter/pkg/cache"
	appErrors "banter/pkg/errors"
	"banter/pkg/logger"

	"github.com/google/uuid"
)

// MessageStore makes a group's message list addressable by group id.
// Reads go through a TTL cache; Append persists first and refreshes the
// cache before returning, so a read right after an append observes it.
type MessageStore struct {
	repo    group.GroupRepository
	cache   *cache.Cache[[]model.GroupMessage]
	lastErr *appErrors.LastError
	logger  *logger.Logger
}

func NewMessageStore(repo group.GroupRepository, c *cache.Cache[[]model.GroupMessage], lastErr *appErrors.LastError, logger logger.Logger) *MessageStore {
	return &MessageStore{
		repo:    repo,
		cache:   c,
		lastErr: lastErr,
		logger:  &logger,
	}
}

// Get returns the group's messages ordered by send time ascending. A
// group without messages yields an empty list.
func (s *MessageStore) Get(ctx context.Context, groupID string) ([]model.GroupMessage, error) {
	if msgs, ok := s.cache.Get(groupID); ok {
		return msgs, nil
	}

	msgs, err := s.repo.GetMessagesByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(groupID, msgs)
	return msgs, nil
}

// Set overwrites the cache entry without touching the durable store.
// Bulk import/restore only; concurrent appenders must use Append.
func (s *MessageStore) Set(groupID string, msgs []model.GroupMessage) {
	s.cache.Set(groupID, msgs)
}

// Append persists each message individually, then refreshes the cache
// from the durable store and returns the prior length plus the number of
// appended items. The count may be outrun by concurrent appenders the
// moment it is returned.
//
// If any insert fails, the cache entry is dropped so the next read
// reconciles from the durable store, and the error reports how many items
// made it in.
func (s *MessageStore) Append(ctx context.Context, groupID string, msgs ...*model.GroupMessage) (int, error) {
	if groupID == "" {
		return 0, s.fail("messages.append", appErrors.ErrEmptyGroupID, nil)
	}
	if len(msgs) == 0 {
		prior, err := s.Get(ctx, groupID)
		return len(prior), err
	}

	prior, err := s.Get(ctx, groupID)
	if err != nil {
		return 0, s.fail("messages.append", err, map[string]any{"group_id": groupID})
	}

	for i, m := range msgs {
		if m.ID == "" {
			m.ID = uuid.NewString()
		}
		m.GroupID = groupID
		if m.SentAt.IsZero() {
			m.SentAt = time.Now().UTC()
		}

		if err := s.repo.InsertMessage(ctx, m); err != nil {
			s.cache.Delete(groupID)
			return 0, s.fail("messages.append",
				appErrors.ErrPartialAppend(i, len(msgs), err),
				map[string]any{"group_id": groupID})
		}
	}

	// Refresh from the durable store so the cached list carries exactly
	// what was persisted. A failed refresh only costs the cache entry.
	fresh, err := s.repo.GetMessagesByGroup(ctx, groupID)
	if err != nil {
		s.cache.Delete(groupID)
		s.logger.Warn("cache refresh after append failed", "group_id", groupID, "err", err)
	} else {
		s.cache.Set(groupID, fresh)
	}

	return len(prior) + len(msgs), nil
}

// Delete removes every message of the group from the durable store and
// evicts the cache entry. The entry is evicted even on failure so a
// half-applied delete cannot be served from cache.
func (s *MessageStore) Delete(ctx context.Context, groupID string) error {
	err := s.repo.DeleteMessagesByGroup(ctx, groupID)
	s.cache.Delete(groupID)
	if err != nil {
		return s.fail("messages.delete", err, map[string]any{"group_id": groupID})
	}
	return nil
}

func (s *MessageStore) DeleteMessage(ctx context.Context, groupID, messageID string) error {
	err := s.repo.DeleteMessage(ctx, messageID)
	s.cache.Delete(groupID)
	if err != nil {
		return s.fail("messages.deleteOne", err,
			map[string]any{"group_id": groupID, "message_id": messageID})
	}
	return nil
}

// ToggleReaction adds the user's reaction under emoji, or removes it if
// an entry for that user already exists. The updated mapping is persisted
// before the cache entry is dropped.
func (s *MessageStore) ToggleReaction(ctx context.Context, groupID, messageID, emoji, userEmail, displayName string) error {
	msg, err := s.repo.GetMessageByID(ctx, messageID)
	if err != nil {
		return s.fail("messages.toggleReaction", err, map[string]any{"message_id": messageID})
	}
	if msg == nil || msg.GroupID != groupID {
		return s.fail("messages.toggleReaction", appErrors.ErrMessageNotFound,
			map[string]any{"group_id": groupID, "message_id": messageID})
	}

	reactions := msg.Reactions
	if reactions == nil {
		reactions = make(map[string][]model.Reaction)
	}

	entries := reactions[emoji]
	removed := false
	for i, e := range entries {
		if e.UserEmail == userEmail {
			entries = append(entries[:i], entries[i+1:]...)
			removed = true
			break
		}
	}
	if removed {
		if len(entries) == 0 {
			delete(reactions, emoji)
		} else {
			reactions[emoji] = entries
		}
	} else {
		reactions[emoji] = append(entries, model.Reaction{
			UserEmail:   userEmail,
			DisplayName: displayName,
			ReactedAt:   time.Now().UTC(),
		})
	}

	if err := s.repo.UpdateMessageReactions(ctx, messageID, reactions); err != nil {
		s.cache.Delete(groupID)
		return s.fail("messages.toggleReaction", err,
			map[string]any{"group_id": groupID, "message_id": messageID})
	}

	s.cache.Delete(groupID)
	return nil
}

// AddTranslation stores a translated variant of the message content under
// the given language code.
func (s *MessageStore) AddTranslation(ctx context.Context, groupID, messageID, lang, text string) error {
	msg, err := s.repo.GetMessageByID(ctx, messageID)
	if err != nil {
		return s.fail("messages.addTranslation", err, map[string]any{"message_id": messageID})
	}
	if msg == nil || msg.GroupID != groupID {
		return s.fail("messages.addTranslation", appErrors.ErrMessageNotFound,
			map[string]any{"group_id": groupID, "message_id": messageID})
	}

	translations := msg.Translations
	if translations == nil {
		translations = make(map[string]string)
	}
	translations[lang] = text

	if err := s.repo.UpdateMessageTranslations(ctx, messageID, translations); err != nil {
		s.cache.Delete(groupID)
		return s.fail("messages.addTranslation", err,
			map[string]any{"group_id": groupID, "message_id": messageID})
	}

	s.cache.Delete(groupID)
	return nil
}

func (s *MessageStore) Invalidate(groupID string) {
	s.cache.Delete(groupID)
}

func (s *MessageStore) InvalidateAll() {
	s.cache.Clear()
}

func (s *MessageStore) fail(op string, err error, ctx map[string]any) error {
	s.lastErr.Record(op, err, ctx)
	return err
}
