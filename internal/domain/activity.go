package domain

import "time"

// Activity types
const (
	ActivityProfileCreated = "profile_created"
	ActivityMessagePosted  = "message_posted"
	ActivityPhotoAdded     = "photo_added"
)

// Activity is an append-only feed event (activities table).
// Rows are never mutated or deleted.
type Activity struct {
	ID         int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Type       string    `gorm:"column:type;size:32;not null" json:"type"`
	MemorialID int       `gorm:"column:memorial_id;not null;index" json:"memorial_id"`
	UserID     *int      `gorm:"column:user_id" json:"user_id,omitempty"`
	Metadata   string    `gorm:"column:metadata;type:text" json:"metadata,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName returns the table name
func (Activity) TableName() string {
	return "activities"
}
