package models

import (
	"encoding/json"
	"time"
)

// ReportThreshold is the number of distinct reporters at which content is removed.
const ReportThreshold = 15

// Target types shared by reactions and comments.
const (
	TargetPost  = "post"
	TargetStory = "story"
)

// ReactionKind distinguishes the like set from the report set.
type ReactionKind string

const (
	ReactionLike   ReactionKind = "like"
	ReactionReport ReactionKind = "report"
)

// Reaction is one user's membership in the like or report set of a post or story.
// The composite unique index makes each set hold a user at most once.
type Reaction struct {
	ID         uint         `gorm:"primaryKey" json:"-"`
	TargetType string       `gorm:"type:varchar(16);not null;uniqueIndex:idx_reaction_member,priority:1" json:"-"`
	TargetID   uint         `gorm:"not null;uniqueIndex:idx_reaction_member,priority:2" json:"-"`
	UserID     uint         `gorm:"not null;uniqueIndex:idx_reaction_member,priority:3;index" json:"-"`
	Kind       ReactionKind `gorm:"type:varchar(16);not null;uniqueIndex:idx_reaction_member,priority:4" json:"-"`
	CreatedAt  time.Time    `json:"-"`
}

// Comment is an append-only remark on a post or story.
type Comment struct {
	ID         uint      `gorm:"primaryKey"`
	TargetType string    `gorm:"type:varchar(16);not null;index:idx_comment_target,priority:1"`
	TargetID   uint      `gorm:"not null;index:idx_comment_target,priority:2"`
	UserID     uint      `gorm:"not null;index"`
	User       User      `gorm:"foreignKey:UserID"`
	Text       string    `gorm:"type:text;not null"`
	CreatedAt  time.Time
}

type commentAuthor struct {
	ID   uint   `json:"_id"`
	Name string `json:"name"`
}

type commentJSON struct {
	ID        uint          `json:"_id"`
	User      commentAuthor `json:"user"`
	Text      string        `json:"text"`
	CreatedAt time.Time     `json:"createdAt"`
}

// MarshalJSON exposes only the author's id and name.
func (c Comment) MarshalJSON() ([]byte, error) {
	return json.Marshal(commentJSON{
		ID:        c.ID,
		User:      commentAuthor{ID: c.UserID, Name: c.User.Name},
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	})
}
