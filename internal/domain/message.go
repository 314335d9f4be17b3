package domain

import "time"

// Message visibility states derived from the two moderation flags.
// Transitions: add -> visible; report -> reported (idempotent);
// hide -> hidden (owner only); unhide -> visible, clearing the report flag.
const (
	MessageStatusVisible  = "visible"
	MessageStatusReported = "reported"
	MessageStatusHidden   = "hidden"
)

// MemorialMessage is a tribute left on a memorial wall
// (memorial_messages table). AuthorID is nil for guest posts, which
// must carry AuthorName instead.
type MemorialMessage struct {
	ID         int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	MemorialID int       `gorm:"column:memorial_id;not null;index" json:"memorial_id"`
	AuthorID   *int      `gorm:"column:author_id" json:"author_id,omitempty"`
	AuthorName string    `gorm:"column:author_name;size:255" json:"author_name,omitempty"`
	Content    string    `gorm:"column:content;type:text;not null" json:"content"`
	IsReported bool      `gorm:"column:is_reported;not null;default:false" json:"is_reported"`
	IsHidden   bool      `gorm:"column:is_hidden;not null;default:false" json:"is_hidden"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName returns the table name
func (MemorialMessage) TableName() string {
	return "memorial_messages"
}

// Status returns the moderation state derived from the flags.
// Hidden wins over reported: a hidden message stays hidden even if flagged.
func (m *MemorialMessage) Status() string {
	if m.IsHidden {
		return MessageStatusHidden
	}
	if m.IsReported {
		return MessageStatusReported
	}
	return MessageStatusVisible
}

// AddMessageRequest payload for posting a tribute message.
// AuthorName is required for guests and ignored for authenticated callers.
type AddMessageRequest struct {
	Content    string `json:"content" binding:"required"`
	AuthorName string `json:"author_name"`
}

// MessageResponse is the read model for wall messages. AuthorName carries
// the guest-supplied name or the resolved account name of the author.
type MessageResponse struct {
	ID         int    `json:"id"`
	MemorialID int    `json:"memorial_id"`
	AuthorID   *int   `json:"author_id,omitempty"`
	AuthorName string `json:"author_name,omitempty"`
	Content    string `json:"content"`
	Status     string `json:"status"`
	IsReported bool   `json:"is_reported"`
	IsHidden   bool   `json:"is_hidden"`
	CreatedAt  string `json:"created_at"`
}

// ToResponse converts a message row to its read model
func (m *MemorialMessage) ToResponse() *MessageResponse {
	return &MessageResponse{
		ID:         m.ID,
		MemorialID: m.MemorialID,
		AuthorID:   m.AuthorID,
		AuthorName: m.AuthorName,
		Content:    m.Content,
		Status:     m.Status(),
		IsReported: m.IsReported,
		IsHidden:   m.IsHidden,
		CreatedAt:  m.CreatedAt.Format(time.RFC3339),
	}
}
