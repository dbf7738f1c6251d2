package repository

import (
	"context"
	"errors"

	"moodrealm/internal/models"

	"gorm.io/gorm"
)

// StoryRepository defines persistence operations for stories.
type StoryRepository interface {
	Create(ctx context.Context, story *models.Story) error
	GetByID(ctx context.Context, id uint) (*models.Story, error)
	ListPublic(ctx context.Context, limit, offset int) ([]*models.Story, error)
	// ListByUser returns every story of the user regardless of privacy.
	ListByUser(ctx context.Context, userID uint) ([]*models.Story, error)
	Delete(ctx context.Context, id uint) error
}

type storyRepository struct {
	db *gorm.DB
}

// NewStoryRepository returns a new StoryRepository implementation.
func NewStoryRepository(db *gorm.DB) StoryRepository {
	return &storyRepository{db: db}
}

func (r *storyRepository) Create(ctx context.Context, story *models.Story) error {
	if err := r.db.WithContext(ctx).Omit("User", "Comments").Create(story).Error; err != nil {
		return err
	}
	loaded, err := r.GetByID(ctx, story.ID)
	if err != nil {
		return err
	}
	*story = *loaded
	return nil
}

func (r *storyRepository) GetByID(ctx context.Context, id uint) (*models.Story, error) {
	var story models.Story
	if err := withCommentAuthors(r.db.WithContext(ctx)).First(&story, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Story")
		}
		return nil, err
	}
	if err := r.attachReactions(ctx, []*models.Story{&story}); err != nil {
		return nil, err
	}
	return &story, nil
}

func (r *storyRepository) ListPublic(ctx context.Context, limit, offset int) ([]*models.Story, error) {
	stories := []*models.Story{}
	err := withCommentAuthors(r.db.WithContext(ctx)).
		Where("privacy = ?", models.PrivacyPublic).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&stories).Error
	if err != nil {
		return nil, err
	}
	if err := r.attachReactions(ctx, stories); err != nil {
		return nil, err
	}
	return stories, nil
}

func (r *storyRepository) ListByUser(ctx context.Context, userID uint) ([]*models.Story, error) {
	stories := []*models.Story{}
	err := withCommentAuthors(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&stories).Error
	if err != nil {
		return nil, err
	}
	if err := r.attachReactions(ctx, stories); err != nil {
		return nil, err
	}
	return stories, nil
}

func (r *storyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteTargetChildren(tx, models.TargetStory, id); err != nil {
			return err
		}
		res := tx.Delete(&models.Story{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Story")
		}
		return nil
	})
}

func (r *storyRepository) attachReactions(ctx context.Context, stories []*models.Story) error {
	ids := make([]uint, 0, len(stories))
	for _, s := range stories {
		ids = append(ids, s.ID)
	}
	likes, reports, err := reactionMembers(ctx, r.db, models.TargetStory, ids)
	if err != nil {
		return err
	}
	for _, s := range stories {
		s.Likes = orEmpty(likes[s.ID])
		s.Reports = orEmpty(reports[s.ID])
		if s.Comments == nil {
			s.Comments = []models.Comment{}
		}
	}
	return nil
}
