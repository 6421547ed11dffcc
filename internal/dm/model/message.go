package model

import (
	"time"

	group "banter/internal/group/model"
)

type DirectMessage struct {
	ID             string `bun:",pk"`
	ConversationID string `bun:",notnull"`

	Sender    string `bun:",notnull"`
	Recipient string `bun:",notnull"`
	Content   string `bun:",notnull"`

	Translations map[string]string     `bun:",type:jsonb,nullzero"`
	Attachment   *group.FileAttachment `bun:",type:jsonb,nullzero"`

	SentAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
