package model

import (
	"time"
)

// Reaction is one user's reaction entry under an emoji.
type Reaction struct {
	UserEmail   string    `json:"userEmail"`
	DisplayName string    `json:"displayName"`
	ReactedAt   time.Time `json:"reactedAt"`
}

// FileAttachment describes an uploaded file referenced by a message.
// Upload handling itself lives outside this subsystem.
type FileAttachment struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

type GroupMessage struct {
	ID      string `bun:",pk"`
	GroupID string `bun:",notnull"`
	Group   *Group `bun:"rel:belongs-to,join:group_id=id"`

	Sender  string `bun:",notnull"` // sender's user email
	Content string `bun:",notnull"`

	// Language code -> translated text. Storage only; translation calls
	// happen outside this subsystem.
	Translations map[string]string `bun:",type:jsonb,nullzero"`

	Attachment *FileAttachment `bun:",type:jsonb,nullzero"`

	// Emoji -> ordered reaction entries.
	Reactions map[string][]Reaction `bun:",type:jsonb,nullzero"`

	SentAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
