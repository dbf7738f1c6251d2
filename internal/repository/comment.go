package repository

import (
	"context"

	"moodrealm/internal/models"

	"gorm.io/gorm"
)

// CommentRepository appends to and reads the comment lists of posts and stories.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByTarget(ctx context.Context, targetType string, targetID uint) ([]models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository returns a new CommentRepository implementation.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Omit("User").Create(comment).Error
}

// ListByTarget returns comments in insertion order with their authors.
func (r *commentRepository) ListByTarget(ctx context.Context, targetType string, targetID uint) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Order("id ASC").
		Find(&comments).Error
	return comments, err
}
