package dm

import (
	"context"

	"banter/internal/dm/model"
)

// DMRepository is the durable-store face for direct messages, keyed by
// conversation identifier (see model.ConversationID).
type DMRepository interface {
	GetMessagesByConversation(ctx context.Context, conversationID string) ([]model.DirectMessage, error)
	InsertMessage(ctx context.Context, msg *model.DirectMessage) error
	DeleteMessagesByConversation(ctx context.Context, conversationID string) error
	ConversationExists(ctx context.Context, conversationID string) (bool, error)

	UpdateMessageTranslations(ctx context.Context, messageID string, translations map[string]string) error
}
