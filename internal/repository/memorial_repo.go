package repository

import (
	"github.com/lembranca/memorial-backend/internal/domain"
	"gorm.io/gorm"
)

// MemorialRepository memorial profile data access interface
type MemorialRepository interface {
	Create(profile *domain.MemorialProfile) error
	FindByID(id int) (*domain.MemorialProfile, error)
	FindByCreator(creatorID int) ([]*domain.MemorialProfile, error)
	FindAll(limit int) ([]*domain.MemorialProfile, error)
	SearchByName(query string, limit int) ([]*domain.MemorialProfile, error)
	Update(id int, updates map[string]interface{}) error
	Delete(id int) error
	IncrementVisitCount(id int) error
}

type memorialRepository struct {
	db *gorm.DB
}

// NewMemorialRepository creates a new MemorialRepository
func NewMemorialRepository(db *gorm.DB) MemorialRepository {
	return &memorialRepository{db: db}
}

// Create inserts a new memorial profile
func (r *memorialRepository) Create(profile *domain.MemorialProfile) error {
	return r.db.Create(profile).Error
}

// FindByID finds a memorial profile by ID
func (r *memorialRepository) FindByID(id int) (*domain.MemorialProfile, error) {
	var profile domain.MemorialProfile
	if err := r.db.Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByCreator returns the profiles owned by a user, newest first
func (r *memorialRepository) FindByCreator(creatorID int) ([]*domain.MemorialProfile, error) {
	var profiles []*domain.MemorialProfile
	err := r.db.Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&profiles).Error
	return profiles, err
}

// FindAll returns the newest profiles up to limit
func (r *memorialRepository) FindAll(limit int) ([]*domain.MemorialProfile, error) {
	var profiles []*domain.MemorialProfile
	err := r.db.Order("created_at DESC").
		Limit(limit).
		Find(&profiles).Error
	return profiles, err
}

// SearchByName performs a case-insensitive substring match on name,
// newest first, capped at limit
func (r *memorialRepository) SearchByName(query string, limit int) ([]*domain.MemorialProfile, error) {
	var profiles []*domain.MemorialProfile
	err := r.db.Where("name LIKE ?", "%"+query+"%").
		Order("created_at DESC").
		Limit(limit).
		Find(&profiles).Error
	return profiles, err
}

// Update applies a partial column update
func (r *memorialRepository) Update(id int, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&domain.MemorialProfile{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// Delete removes a memorial profile row. Child photos, messages and
// activities are intentionally left in place (no cascade).
func (r *memorialRepository) Delete(id int) error {
	return r.db.Where("id = ?", id).Delete(&domain.MemorialProfile{}).Error
}

// IncrementVisitCount bumps the visit counter atomically in the store
func (r *memorialRepository) IncrementVisitCount(id int) error {
	return r.db.Model(&domain.MemorialProfile{}).
		Where("id = ?", id).
		UpdateColumn("visit_count", gorm.Expr("visit_count + ?", 1)).Error
}
