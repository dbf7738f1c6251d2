package repository

import (
	"context"
	"errors"
	"time"

	"moodrealm/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ConversationRepository persists AI companion threads.
type ConversationRepository interface {
	// GetByUserID returns the user's conversation with messages in order.
	GetByUserID(ctx context.Context, userID uint) (*models.Conversation, error)
	// GetOrCreate returns the user's conversation, creating it seeded with priming when absent.
	GetOrCreate(ctx context.Context, userID uint, priming []models.ConversationMessage) (*models.Conversation, error)
	AppendMessage(ctx context.Context, conversationID uint, msg *models.ConversationMessage) error
	// Reset replaces every message of the user's conversation with priming.
	// It is a no-op when the user has no conversation.
	Reset(ctx context.Context, userID uint, priming []models.ConversationMessage) error
}

type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository returns a new ConversationRepository implementation.
func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) GetByUserID(ctx context.Context, userID uint) (*models.Conversation, error) {
	var conv models.Conversation
	err := r.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("user_id = ?", userID).
		First(&conv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Conversation")
		}
		return nil, err
	}
	return &conv, nil
}

func (r *conversationRepository) GetOrCreate(ctx context.Context, userID uint, priming []models.ConversationMessage) (*models.Conversation, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		conv := models.Conversation{UserID: userID}
		res := tx.Omit("Messages").
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
			Create(&conv)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return insertMessages(tx, conv.ID, priming)
	})
	if err != nil {
		return nil, err
	}
	return r.GetByUserID(ctx, userID)
}

func (r *conversationRepository) AppendMessage(ctx context.Context, conversationID uint, msg *models.ConversationMessage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		msg.ConversationID = conversationID
		if msg.Timestamp.IsZero() {
			msg.Timestamp = time.Now()
		}
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		return tx.Model(&models.Conversation{}).Where("id = ?", conversationID).
			Update("updated_at", time.Now()).Error
	})
}

func (r *conversationRepository) Reset(ctx context.Context, userID uint, priming []models.ConversationMessage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var conv models.Conversation
		if err := tx.Where("user_id = ?", userID).First(&conv).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Where("conversation_id = ?", conv.ID).Delete(&models.ConversationMessage{}).Error; err != nil {
			return err
		}
		if err := insertMessages(tx, conv.ID, priming); err != nil {
			return err
		}
		return tx.Model(&conv).Update("updated_at", time.Now()).Error
	})
}

func insertMessages(tx *gorm.DB, conversationID uint, msgs []models.ConversationMessage) error {
	if len(msgs) == 0 {
		return nil
	}
	now := time.Now()
	rows := make([]models.ConversationMessage, len(msgs))
	for i, m := range msgs {
		rows[i] = models.ConversationMessage{
			ConversationID: conversationID,
			Role:           m.Role,
			Content:        m.Content,
			Timestamp:      now,
		}
	}
	return tx.Create(&rows).Error
}
