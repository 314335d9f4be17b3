package domain

import "time"

// MemorialPhoto is a gallery photo attached to a memorial profile
// (memorial_photos table). Photos are always public.
type MemorialPhoto struct {
	ID         int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	MemorialID int       `gorm:"column:memorial_id;not null;index" json:"memorial_id"`
	UploadedBy int       `gorm:"column:uploaded_by;not null" json:"uploaded_by"`
	PhotoURL   string    `gorm:"column:photo_url;not null" json:"photo_url"`
	PhotoKey   string    `gorm:"column:photo_key;not null" json:"photo_key"`
	Caption    string    `gorm:"column:caption;type:text" json:"caption,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName returns the table name
func (MemorialPhoto) TableName() string {
	return "memorial_photos"
}

// AddPhotoRequest payload for attaching a photo to a memorial
type AddPhotoRequest struct {
	PhotoURL string `json:"photo_url" binding:"required"`
	PhotoKey string `json:"photo_key" binding:"required"`
	Caption  string `json:"caption"`
}
