package group

import (
	"context"

	"banter/internal/group/model"
)

// GroupStore is the key-indexed accessor for groups. Reads go through a
// TTL cache; writes hit the durable store first and invalidate the cache
// before returning, so a read immediately after a write observes it.
type GroupStore interface {
	// Get returns the group with its resolved member list, or (nil, nil)
	// when no such group exists.
	Get(ctx context.Context, groupID string) (*model.GroupWithMembers, error)

	// Set creates a new group transactionally. If the id already exists it
	// fails with ErrGroupExists; in-place replacement is not supported
	// through this path.
	Set(ctx context.Context, groupID string, gwm *model.GroupWithMembers) error

	// Delete cascades: messages, members, then the group row, atomically.
	Delete(ctx context.Context, groupID string) error

	Has(ctx context.Context, groupID string) (bool, error)

	// List enumerates all known group ids, straight from the durable store.
	List(ctx context.Context) ([]string, error)

	Invalidate(groupID string)
	InvalidateAll()
}

// MessageStore is the key-indexed accessor for a group's message list,
// keyed by group id. Appending goes through Append so that persistence
// and cache invalidation stay visible at the call site.
type MessageStore interface {
	// Get returns the group's messages ordered by send time ascending.
	// An unknown group yields an empty list, not an error.
	Get(ctx context.Context, groupID string) ([]model.GroupMessage, error)

	// Set overwrites the cache entry only; the durable store is untouched.
	// Bulk import/restore paths use it. Concurrent appenders must use
	// Append instead.
	Set(groupID string, msgs []model.GroupMessage)

	// Append persists each item and returns the apparent list length after
	// the append. On partial failure the cache entry is dropped and the
	// error reports how many items persisted.
	Append(ctx context.Context, groupID string, msgs ...*model.GroupMessage) (int, error)

	// Delete removes every message of the group from the durable store and
	// evicts the cache entry.
	Delete(ctx context.Context, groupID string) error

	DeleteMessage(ctx context.Context, groupID, messageID string) error

	// ToggleReaction adds the user's reaction under emoji, or removes it if
	// already present, persists the change and evicts the cache entry.
	ToggleReaction(ctx context.Context, groupID, messageID, emoji, userEmail, displayName string) error

	// AddTranslation stores a translated variant of the message content.
	AddTranslation(ctx context.Context, groupID, messageID, lang, text string) error

	Invalidate(groupID string)
	InvalidateAll()
}
