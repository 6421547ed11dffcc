package group

import (
	"context"

	"banter/internal/group/model"
)

// GroupRepository is the durable-store face for groups, members and group
// messages. All multi-row mutations run as a single transaction inside the
// repository; callers never stitch partial writes together themselves.
type GroupRepository interface {
	GetGroupByID(ctx context.Context, groupID string) (*model.Group, error)
	GetAllGroups(ctx context.Context) ([]model.Group, error)
	GroupExists(ctx context.Context, groupID string) (bool, error)
	GetMembers(ctx context.Context, groupID string) ([]model.GroupMember, error)

	// CreateGroupWithMembers inserts the group row and every member row in
	// one transaction; any failure rolls the whole thing back.
	CreateGroupWithMembers(ctx context.Context, g *model.Group, members []model.GroupMember) error

	// DeleteGroupWithCascade deletes messages, members and the group row in
	// one transaction.
	DeleteGroupWithCascade(ctx context.Context, groupID string) error

	GetMessagesByGroup(ctx context.Context, groupID string) ([]model.GroupMessage, error)
	GetMessageByID(ctx context.Context, messageID string) (*model.GroupMessage, error)
	InsertMessage(ctx context.Context, msg *model.GroupMessage) error
	DeleteMessage(ctx context.Context, messageID string) error
	DeleteMessagesByGroup(ctx context.Context, groupID string) error

	UpdateMessageReactions(ctx context.Context, messageID string, reactions map[string][]model.Reaction) error
	UpdateMessageTranslations(ctx context.Context, messageID string, translations map[string]string) error
}
