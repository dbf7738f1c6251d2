package models

import (
	"strings"
	"time"
)

// Role identifies the speaker of a companion chat message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// ParseRole normalises client role labels; "assistant", "bot" and "ai" map to RoleModel.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "user", "human":
		return RoleUser, true
	case "model", "assistant", "bot", "ai":
		return RoleModel, true
	default:
		return "", false
	}
}

// PrimingMessageCount is the number of persona messages at the head of every conversation.
const PrimingMessageCount = 2

// Conversation is a user's single AI companion thread.
type Conversation struct {
	ID        uint                  `gorm:"primaryKey" json:"-"`
	UserID    uint                  `gorm:"uniqueIndex;not null" json:"-"`
	Messages  []ConversationMessage `gorm:"foreignKey:ConversationID" json:"messages"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

// ConversationMessage is one turn of a conversation, in insertion order.
type ConversationMessage struct {
	ID             uint      `gorm:"primaryKey" json:"-"`
	ConversationID uint      `gorm:"not null;index" json:"-"`
	Role           Role      `gorm:"type:varchar(8);not null" json:"role"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	Timestamp      time.Time `json:"timestamp"`
}

// Visible drops the priming pair from a persisted message list.
func (c *Conversation) Visible() []ConversationMessage {
	if len(c.Messages) <= PrimingMessageCount {
		return []ConversationMessage{}
	}
	return c.Messages[PrimingMessageCount:]
}
