package dm

import (
	"context"

	"banter/internal/dm/model"
)

// ConversationStore is the key-indexed accessor for direct-message
// threads, keyed by conversation identifier. Enumerating all
// conversations is deliberately absent; it needs a dedicated query this
// subsystem does not own.
type ConversationStore interface {
	// Get returns the conversation's messages ordered by send time
	// ascending. An unknown conversation yields an empty list.
	Get(ctx context.Context, conversationID string) ([]model.DirectMessage, error)

	// Set overwrites the cache entry only; the durable store is untouched.
	Set(conversationID string, msgs []model.DirectMessage)

	// Append persists each item and returns the apparent list length after
	// the append. Same contract as the group message accessor.
	Append(ctx context.Context, conversationID string, msgs ...*model.DirectMessage) (int, error)

	// Delete removes the conversation's messages from the durable store
	// and evicts the cache entry.
	Delete(ctx context.Context, conversationID string) error

	Has(ctx context.Context, conversationID string) (bool, error)

	AddTranslation(ctx context.Context, conversationID, messageID, lang, text string) error

	Invalidate(conversationID string)
	InvalidateAll()
}
