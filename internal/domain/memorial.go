package domain

import "time"

// MemorialProfile represents a memorial page for a deceased individual
// (memorial_profiles table). CreatorID is immutable after creation.
type MemorialProfile struct {
	ID         int        `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CreatorID  int        `gorm:"column:creator_id;not null;index" json:"creator_id"`
	Name       string     `gorm:"column:name;size:255;not null" json:"name"`
	PhotoURL   string     `gorm:"column:photo_url" json:"photo_url,omitempty"`
	PhotoKey   string     `gorm:"column:photo_key" json:"photo_key,omitempty"`
	BirthDate  *time.Time `gorm:"column:birth_date" json:"birth_date,omitempty"`
	DeathDate  *time.Time `gorm:"column:death_date" json:"death_date,omitempty"`
	Biography  string     `gorm:"column:biography;type:text" json:"biography,omitempty"`
	VisitCount int        `gorm:"column:visit_count;not null;default:0" json:"visit_count"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName returns the table name
func (MemorialProfile) TableName() string {
	return "memorial_profiles"
}

// CreateMemorialRequest payload for creating a memorial profile
type CreateMemorialRequest struct {
	Name      string     `json:"name" binding:"required"`
	PhotoURL  string     `json:"photo_url"`
	PhotoKey  string     `json:"photo_key"`
	BirthDate *time.Time `json:"birth_date"`
	DeathDate *time.Time `json:"death_date"`
	Biography string     `json:"biography"`
}

// UpdateMemorialRequest partial update payload; nil fields are left untouched
type UpdateMemorialRequest struct {
	Name      *string    `json:"name"`
	PhotoURL  *string    `json:"photo_url"`
	PhotoKey  *string    `json:"photo_key"`
	BirthDate *time.Time `json:"birth_date"`
	DeathDate *time.Time `json:"death_date"`
	Biography *string    `json:"biography"`
}

// Fields returns the column map for a partial update
func (r *UpdateMemorialRequest) Fields() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.PhotoURL != nil {
		updates["photo_url"] = *r.PhotoURL
	}
	if r.PhotoKey != nil {
		updates["photo_key"] = *r.PhotoKey
	}
	if r.BirthDate != nil {
		updates["birth_date"] = *r.BirthDate
	}
	if r.DeathDate != nil {
		updates["death_date"] = *r.DeathDate
	}
	if r.Biography != nil {
		updates["biography"] = *r.Biography
	}
	return updates
}
