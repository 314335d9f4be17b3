package service

import (
	"errors"

	"github.com/lembranca/memorial-backend/internal/common"
	"github.com/lembranca/memorial-backend/internal/domain"
	"github.com/lembranca/memorial-backend/internal/repository"
	pkglogger "github.com/lembranca/memorial-backend/pkg/logger"
	"gorm.io/gorm"
)

// PhotoService business logic for memorial photo galleries
type PhotoService interface {
	Add(memorialID, uploaderID int, req *domain.AddPhotoRequest) (*domain.MemorialPhoto, error)
	GetByMemorial(memorialID int) ([]*domain.MemorialPhoto, error)
	Delete(id int) error
}

type photoService struct {
	repo         repository.PhotoRepository
	memorialRepo repository.MemorialRepository
	activityRepo repository.ActivityRepository
}

// NewPhotoService creates a new PhotoService
func NewPhotoService(repo repository.PhotoRepository, memorialRepo repository.MemorialRepository, activityRepo repository.ActivityRepository) PhotoService {
	return &photoService{
		repo:         repo,
		memorialRepo: memorialRepo,
		activityRepo: activityRepo,
	}
}

// Add attaches a photo to an existing memorial. Any authenticated user
// may add photos to any memorial; only the parent must exist.
func (s *photoService) Add(memorialID, uploaderID int, req *domain.AddPhotoRequest) (*domain.MemorialPhoto, error) {
	if _, err := s.memorialRepo.FindByID(memorialID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrMemorialNotFound
		}
		return nil, err
	}

	photo := &domain.MemorialPhoto{
		MemorialID: memorialID,
		UploadedBy: uploaderID,
		PhotoURL:   req.PhotoURL,
		PhotoKey:   req.PhotoKey,
		Caption:    req.Caption,
	}

	if err := s.repo.Create(photo); err != nil {
		return nil, err
	}

	// Best-effort feed entry
	err := s.activityRepo.Create(&domain.Activity{
		Type:       domain.ActivityPhotoAdded,
		MemorialID: memorialID,
		UserID:     &uploaderID,
	})
	if err != nil {
		pkglogger.GetLogger().Warn().Err(err).Int("memorial_id", memorialID).Msg("activity write failed")
	}

	return photo, nil
}

// GetByMemorial returns all photos of a memorial, newest first. Photos
// are always public. Infrastructure failures degrade to an empty list.
func (s *photoService) GetByMemorial(memorialID int) ([]*domain.MemorialPhoto, error) {
	photos, err := s.repo.FindByMemorial(memorialID)
	if err != nil {
		pkglogger.GetLogger().Warn().Err(err).Int("memorial_id", memorialID).Msg("photo list failed")
		return []*domain.MemorialPhoto{}, nil
	}
	return photos, nil
}

// Delete removes a photo unconditionally. No ownership check is applied
// here; callers are trusted to have verified the parent memorial.
func (s *photoService) Delete(id int) error {
	return s.repo.Delete(id)
}
