package repository

import (
	"github.com/lembranca/memorial-backend/internal/domain"
	"gorm.io/gorm"
)

// ActivityRepository append-only activity feed access
type ActivityRepository interface {
	Create(activity *domain.Activity) error
	FindRecent(limit int) ([]*domain.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// Create appends an activity row
func (r *activityRepository) Create(activity *domain.Activity) error {
	return r.db.Create(activity).Error
}

// FindRecent returns the newest activities up to limit
func (r *activityRepository) FindRecent(limit int) ([]*domain.Activity, error) {
	var activities []*domain.Activity
	err := r.db.Order("created_at DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}
