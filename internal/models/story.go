package models

import "time"

// CoverImage references an uploaded image held by the media store.
type CoverImage struct {
	URL      string `json:"url,omitempty"`
	PublicID string `json:"public_id,omitempty"`
}

// Story is a longer piece of writing that may be kept private.
type Story struct {
	ID         uint       `gorm:"primaryKey" json:"_id"`
	UserID     uint       `gorm:"not null;index" json:"-"`
	User       User       `gorm:"foreignKey:UserID" json:"user"`
	Title      string     `json:"title"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	Mood       Mood       `gorm:"type:varchar(32);not null;default:Neutral" json:"mood"`
	Privacy    Privacy    `gorm:"type:varchar(16);not null;default:public;index" json:"privacy"`
	CoverImage CoverImage `gorm:"embedded;embeddedPrefix:cover_image_" json:"coverImage"`
	Comments   []Comment  `gorm:"polymorphic:Target;polymorphicValue:story" json:"comments"`
	Likes      []uint     `gorm:"-" json:"likes"`
	Reports    []uint     `gorm:"-" json:"reports"`
	CreatedAt  time.Time  `gorm:"index" json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// OwnedBy reports whether userID authored the story.
func (s *Story) OwnedBy(userID uint) bool {
	return s.UserID == userID
}

// VisibleTo reports whether userID may read the story.
func (s *Story) VisibleTo(userID uint) bool {
	return s.Privacy != PrivacyPrivate || s.OwnedBy(userID)
}
