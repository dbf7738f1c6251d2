package repository

import (
	"context"
	"errors"

	"moodrealm/internal/models"

	"gorm.io/gorm"
)

// FeedFilter narrows the post feed. Zero values disable the corresponding filter.
type FeedFilter struct {
	Mood        models.Mood
	ContentType models.ContentType
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	ListFeed(ctx context.Context, filter FeedFilter, sort models.FeedSort, limit, offset int) ([]*models.Post, error)
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error)
	// Delete removes the post together with its reactions and comments.
	Delete(ctx context.Context, id uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Omit("User", "Comments").Create(post).Error; err != nil {
		return err
	}
	loaded, err := r.GetByID(ctx, post.ID)
	if err != nil {
		return err
	}
	*post = *loaded
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := withCommentAuthors(r.applyPostCounts(r.db.WithContext(ctx))).
		Where("posts.id = ?", id).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post")
		}
		return nil, err
	}
	if err := r.attachReactions(ctx, []*models.Post{&post}); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) ListFeed(ctx context.Context, filter FeedFilter, sort models.FeedSort, limit, offset int) ([]*models.Post, error) {
	query := withCommentAuthors(r.applyPostCounts(r.db.WithContext(ctx)))
	if filter.Mood != "" {
		query = query.Where("posts.mood = ?", filter.Mood)
	}
	if filter.ContentType != "" {
		query = query.Where("posts.content_type = ?", filter.ContentType)
	}

	query = applyFeedSort(query, sort).Limit(limit)
	if sort != models.SortRandom {
		query = query.Offset(offset)
	}

	posts := []*models.Post{}
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	if err := r.attachReactions(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	posts := []*models.Post{}
	err := withCommentAuthors(r.applyPostCounts(r.db.WithContext(ctx))).
		Where("posts.user_id = ?", userID).
		Order("posts.created_at DESC, posts.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	if err := r.attachReactions(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteTargetChildren(tx, models.TargetPost, id); err != nil {
			return err
		}
		res := tx.Delete(&models.Post{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Post")
		}
		return nil
	})
}

// applyPostCounts selects the live like and comment cardinalities alongside each post.
func (r *postRepository) applyPostCounts(db *gorm.DB) *gorm.DB {
	return db.Select("posts.*, "+
		"(SELECT COUNT(*) FROM reactions WHERE reactions.target_type = ? AND reactions.target_id = posts.id AND reactions.kind = ?) AS likes_count, "+
		"(SELECT COUNT(*) FROM comments WHERE comments.target_type = ? AND comments.target_id = posts.id) AS comments_count",
		models.TargetPost, models.ReactionLike, models.TargetPost)
}

// applyFeedSort orders by the computed counts from applyPostCounts. Ties fall back to
// newest first, with the id as a final stable tie-breaker.
func applyFeedSort(db *gorm.DB, sort models.FeedSort) *gorm.DB {
	switch sort {
	case models.SortLikes:
		return db.Order("likes_count DESC, posts.created_at DESC, posts.id DESC")
	case models.SortComments:
		return db.Order("comments_count DESC, posts.created_at DESC, posts.id DESC")
	case models.SortRandom:
		return db.Order("RANDOM()")
	default:
		return db.Order("posts.created_at DESC, posts.id DESC")
	}
}

func (r *postRepository) attachReactions(ctx context.Context, posts []*models.Post) error {
	ids := make([]uint, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	likes, reports, err := reactionMembers(ctx, r.db, models.TargetPost, ids)
	if err != nil {
		return err
	}
	for _, p := range posts {
		p.Likes = orEmpty(likes[p.ID])
		p.Reports = orEmpty(reports[p.ID])
		if p.Comments == nil {
			p.Comments = []models.Comment{}
		}
	}
	return nil
}
