package repository

import (
	"context"

	"moodrealm/internal/models"

	"gorm.io/gorm"
)

// ReactionRepository maintains the like and report sets of posts and stories.
type ReactionRepository interface {
	// Toggle flips userID's membership in the kind set of the target and returns
	// the set's cardinality as read after the flip.
	Toggle(ctx context.Context, targetType string, targetID, userID uint, kind models.ReactionKind) (int64, error)
	Count(ctx context.Context, targetType string, targetID uint, kind models.ReactionKind) (int64, error)
}

type reactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository returns a new ReactionRepository implementation.
func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

// reactionTargets maps a target type to the table holding its rows.
var reactionTargets = map[string]string{
	models.TargetPost:  "posts",
	models.TargetStory: "stories",
}

// Toggle removes the membership with a single DELETE; only when nothing was removed
// does it add one. The insert is conditional on the target row existing, so a
// reaction is never written against content that was deleted in between. The
// unique index keeps the set free of duplicates under concurrent calls.
func (r *reactionRepository) Toggle(ctx context.Context, targetType string, targetID, userID uint, kind models.ReactionKind) (int64, error) {
	table, ok := reactionTargets[targetType]
	if !ok {
		return 0, models.NewValidationError("Invalid target type")
	}
	db := r.db.WithContext(ctx)

	res := db.Where("target_type = ? AND target_id = ? AND user_id = ? AND kind = ?", targetType, targetID, userID, kind).
		Delete(&models.Reaction{})
	if res.Error != nil {
		return 0, res.Error
	}

	if res.RowsAffected == 0 {
		insert := db.Exec(
			"INSERT INTO reactions (target_type, target_id, user_id, kind, created_at) "+
				"SELECT CAST(? AS VARCHAR(16)), CAST(? AS BIGINT), CAST(? AS BIGINT), CAST(? AS VARCHAR(16)), CURRENT_TIMESTAMP "+
				"WHERE EXISTS (SELECT 1 FROM "+table+" WHERE id = ?) "+
				"ON CONFLICT DO NOTHING",
			targetType, targetID, userID, string(kind), targetID,
		)
		if insert.Error != nil {
			return 0, insert.Error
		}
		if insert.RowsAffected == 0 {
			exists, err := targetExists(ctx, r.db, table, targetID)
			if err != nil {
				return 0, err
			}
			if !exists {
				return 0, models.NewNotFoundError(targetName(targetType))
			}
		}
	}

	return r.Count(ctx, targetType, targetID, kind)
}

func (r *reactionRepository) Count(ctx context.Context, targetType string, targetID uint, kind models.ReactionKind) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Reaction{}).
		Where("target_type = ? AND target_id = ? AND kind = ?", targetType, targetID, kind).
		Count(&count).Error
	return count, err
}

// reactionMembers returns, per target id, the user ids in the like and report sets.
func reactionMembers(ctx context.Context, db *gorm.DB, targetType string, targetIDs []uint) (likes, reports map[uint][]uint, err error) {
	likes = make(map[uint][]uint, len(targetIDs))
	reports = make(map[uint][]uint, len(targetIDs))
	if len(targetIDs) == 0 {
		return likes, reports, nil
	}

	var rows []models.Reaction
	err = db.WithContext(ctx).
		Select("target_id", "user_id", "kind").
		Where("target_type = ? AND target_id IN ?", targetType, targetIDs).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, nil, err
	}

	for _, row := range rows {
		switch row.Kind {
		case models.ReactionLike:
			likes[row.TargetID] = append(likes[row.TargetID], row.UserID)
		case models.ReactionReport:
			reports[row.TargetID] = append(reports[row.TargetID], row.UserID)
		}
	}
	return likes, reports, nil
}

// deleteTargetChildren removes the reactions and comments that hang off a target.
func deleteTargetChildren(tx *gorm.DB, targetType string, targetID uint) error {
	if err := tx.Where("target_type = ? AND target_id = ?", targetType, targetID).Delete(&models.Reaction{}).Error; err != nil {
		return err
	}
	return tx.Where("target_type = ? AND target_id = ?", targetType, targetID).Delete(&models.Comment{}).Error
}

func targetExists(ctx context.Context, db *gorm.DB, table string, id uint) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Table(table).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func targetName(targetType string) string {
	if targetType == models.TargetStory {
		return "Story"
	}
	return "Post"
}

func orEmpty(ids []uint) []uint {
	if ids == nil {
		return []uint{}
	}
	return ids
}

func withCommentAuthors(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("comments.id ASC") }).
		Preload("Comments.User")
}
