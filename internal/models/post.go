package models

import "time"

// Post is a short mood-tagged piece of content shown in the feed.
type Post struct {
	ID              uint        `gorm:"primaryKey" json:"_id"`
	UserID          uint        `gorm:"not null;index" json:"-"`
	User            User        `gorm:"foreignKey:UserID" json:"user"`
	Content         string      `gorm:"type:text;not null" json:"content"`
	Mood            Mood        `gorm:"type:varchar(32);not null;default:Neutral;index" json:"mood"`
	ContentType     ContentType `gorm:"type:varchar(32);not null;default:Thought;index" json:"contentType"`
	BackgroundImage *string     `json:"backgroundImage"`
	BackgroundStyle *string     `json:"backgroundStyle"`
	Comments        []Comment   `gorm:"polymorphic:Target;polymorphicValue:post" json:"comments"`
	// Likes and Reports hold the user ids of each set; loaded by the repository.
	Likes   []uint `gorm:"-" json:"likes"`
	Reports []uint `gorm:"-" json:"reports"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->;-:migration" json:"-"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int       `gorm:"->;-:migration" json:"-"`
	CreatedAt     time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// OwnedBy reports whether userID authored the post.
func (p *Post) OwnedBy(userID uint) bool {
	return p.UserID == userID
}
