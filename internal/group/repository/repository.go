package repository

import (
	"context"
	"database/sql"

	appErrors "banter/pkg/errors"
	"banter/pkg/logger"

	"banter/internal/group/model"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type GroupRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewGroupRepository(db *bun.DB, logger logger.Logger) *GroupRepository {
	return &GroupRepository{
		db:     db,
		logger: &logger,
	}
}

// GetGroupByID returns (nil, nil) when the group does not exist.
func (r *GroupRepository) GetGroupByID(ctx context.Context, groupID string) (*model.Group, error) {
	g := new(model.Group)
	err := r.db.NewSelect().Model(g).Where("id = ?", groupID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "groupRepo.GetGroupByID.Scan")
	}
	return g, nil
}

func (r *GroupRepository) GetAllGroups(ctx context.Context) ([]model.Group, error) {
	var groups []model.Group
	err := r.db.NewSelect().Model(&groups).Order("created_at ASC").Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "groupRepo.GetAllGroups.Scan")
	}
	return groups, nil
}

func (r *GroupRepository) GroupExists(ctx context.Context, groupID string) (bool, error) {
	count, err := r.db.NewSelect().
		Model((*model.Group)(nil)).
		Where("id = ?", groupID).
		Count(ctx)
	if err != nil {
		return false, errors.Wrap(err, "groupRepo.GroupExists.Count")
	}
	return count > 0, nil
}

func (r *GroupRepository) GetMembers(ctx context.Context, groupID string) ([]model.GroupMember, error) {
	var members []model.GroupMember
	err := r.db.NewSelect().
		Model(&members).
		Where("group_id = ?", groupID).
		Order("joined_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "groupRepo.GetMembers.Scan")
	}
	return members, nil
}

// CreateGroupWithMembers inserts the group row and all member rows in one
// transaction. A failed member insert (e.g. a duplicate (group_id,
// user_email) pair) rolls everything back, so no group is ever visible
// without its initial members.
func (r *GroupRepository) CreateGroupWithMembers(ctx context.Context, g *model.Group, members []model.GroupMember) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(g).Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "groupRepo.CreateGroupWithMembers.insertGroup")
		}

		for i := range members {
			members[i].GroupID = g.ID
		}

		_, err = tx.NewInsert().Model(&members).Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "groupRepo.CreateGroupWithMembers.insertMembers")
		}

		return nil
	})
}

// DeleteGroupWithCascade deletes messages, members and the group row in
// one transaction; on failure no partial deletion is visible.
func (r *GroupRepository) DeleteGroupWithCascade(ctx context.Context, groupID string) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*model.GroupMessage)(nil)).
			Where("group_id = ?", groupID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "groupRepo.DeleteGroupWithCascade.deleteMessages")
		}

		_, err = tx.NewDelete().
			Model((*model.GroupMember)(nil)).
			Where("group_id = ?", groupID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "groupRepo.DeleteGroupWithCascade.deleteMembers")
		}

		res, err := tx.NewDelete().
			Model((*model.Group)(nil)).
			Where("id = ?", groupID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "groupRepo.DeleteGroupWithCascade.deleteGroup")
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return appErrors.ErrGroupNotFound
		}

		return nil
	})
}

func (r *GroupRepository) GetMessagesByGroup(ctx context.Context, groupID string) ([]model.GroupMessage, error) {
	var msgs []model.GroupMessage
	err := r.db.NewSelect().
		Model(&msgs).
		Where("group_id = ?", groupID).
		Order("sent_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "groupRepo.GetMessagesByGroup.Scan")
	}
	return msgs, nil
}

// GetMessageByID returns (nil, nil) when the message does not exist.
func (r *GroupRepository) GetMessageByID(ctx context.Context, messageID string) (*model.GroupMessage, error) {
	msg := new(model.GroupMessage)
	err := r.db.NewSelect().Model(msg).Where("id = ?", messageID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "groupRepo.GetMessageByID.Scan")
	}
	return msg, nil
}

func (r *GroupRepository) InsertMessage(ctx context.Context, msg *model.GroupMessage) error {
	_, err := r.db.NewInsert().Model(msg).Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "groupRepo.InsertMessage.Exec")
	}
	return nil
}

func (r *GroupRepository) DeleteMessage(ctx context.Context, messageID string) error {
	res, err := r.db.NewDelete().
		Model((*model.GroupMessage)(nil)).
		Where("id = ?", messageID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "groupRepo.DeleteMessage.Exec")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return appErrors.ErrMessageNotFound
	}
	return nil
}

func (r *GroupRepository) DeleteMessagesByGroup(ctx context.Context, groupID string) error {
	_, err := r.db.NewDelete().
		Model((*model.GroupMessage)(nil)).
		Where("group_id = ?", groupID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "groupRepo.DeleteMessagesByGroup.Exec")
	}
	return nil
}

func (r *GroupRepository) UpdateMessageReactions(ctx context.Context, messageID string, reactions map[string][]model.Reaction) error {
	res, err := r.db.NewUpdate().
		Model(&model.GroupMessage{ID: messageID, Reactions: reactions}).
		Column("reactions").
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "groupRepo.UpdateMessageReactions.Exec")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return appErrors.ErrMessageNotFound
	}
	return nil
}

func (r *GroupRepository) UpdateMessageTranslations(ctx context.Context, messageID string, translations map[string]string) error {
	res, err := r.db.NewUpdate().
		Model(&model.GroupMessage{ID: messageID, Translations: translations}).
		Column("translations").
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "groupRepo.UpdateMessageTranslations.Exec")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return appErrors.ErrMessageNotFound
	}
	return nil
}
