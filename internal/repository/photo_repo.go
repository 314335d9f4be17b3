package repository

import (
	"github.com/lembranca/memorial-backend/internal/domain"
	"gorm.io/gorm"
)

// PhotoRepository memorial photo data access interface
type PhotoRepository interface {
	Create(photo *domain.MemorialPhoto) error
	FindByMemorial(memorialID int) ([]*domain.MemorialPhoto, error)
	Delete(id int) error
}

type photoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository creates a new PhotoRepository
func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db: db}
}

// Create inserts a new photo row
func (r *photoRepository) Create(photo *domain.MemorialPhoto) error {
	return r.db.Create(photo).Error
}

// FindByMemorial returns all photos of a memorial, newest first
func (r *photoRepository) FindByMemorial(memorialID int) ([]*domain.MemorialPhoto, error) {
	var photos []*domain.MemorialPhoto
	err := r.db.Where("memorial_id = ?", memorialID).
		Order("created_at DESC").
		Find(&photos).Error
	return photos, err
}

// Delete removes a photo row
func (r *photoRepository) Delete(id int) error {
	return r.db.Where("id = ?", id).Delete(&domain.MemorialPhoto{}).Error
}
