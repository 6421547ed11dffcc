package repository

import (
	"context"

	appErrors "banter/pkg/errors"
	"banter/pkg/logger"

	"banter/internal/dm/model"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type DMRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewDMRepository(db *bun.DB, logger logger.Logger) *DMRepository {
	return &DMRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *DMRepository) GetMessagesByConversation(ctx context.Context, conversationID string) ([]model.DirectMessage, error) {
	var msgs []model.DirectMessage
	err := r.db.NewSelect().
		Model(&msgs).
		Where("conversation_id = ?", conversationID).
		Order("sent_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "dmRepo.GetMessagesByConversation.Scan")
	}
	return msgs, nil
}

func (r *DMRepository) InsertMessage(ctx context.Context, msg *model.DirectMessage) error {
	_, err := r.db.NewInsert().Model(msg).Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "dmRepo.InsertMessage.Exec")
	}
	return nil
}

func (r *DMRepository) DeleteMessagesByConversation(ctx context.Context, conversationID string) error {
	_, err := r.db.NewDelete().
		Model((*model.DirectMessage)(nil)).
		Where("conversation_id = ?", conversationID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "dmRepo.DeleteMessagesByConversation.Exec")
	}
	return nil
}

func (r *DMRepository) ConversationExists(ctx context.Context, conversationID string) (bool, error) {
	count, err := r.db.NewSelect().
		Model((*model.DirectMessage)(nil)).
		Where("conversation_id = ?", conversationID).
		Count(ctx)
	if err != nil {
		return false, errors.Wrap(err, "dmRepo.ConversationExists.Count")
	}
	return count > 0, nil
}

func (r *DMRepository) UpdateMessageTranslations(ctx context.Context, messageID string, translations map[string]string) error {
	res, err := r.db.NewUpdate().
		Model(&model.DirectMessage{ID: messageID, Translations: translations}).
		Column("translations").
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "dmRepo.UpdateMessageTranslations.Exec")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return appErrors.ErrMessageNotFound
	}
	return nil
}
