package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lembranca/memorial-backend/internal/common"
	"github.com/lembranca/memorial-backend/internal/domain"
	"github.com/lembranca/memorial-backend/internal/repository"
	pkglogger "github.com/lembranca/memorial-backend/pkg/logger"
	"gorm.io/gorm"
)

const searchResultLimit = 50

// MemorialService business logic for memorial profiles: ownership rules,
// visit counting and activity side effects
type MemorialService interface {
	Create(creatorID int, creatorName string, req *domain.CreateMemorialRequest) (*domain.MemorialProfile, error)
	Update(id, requesterID int, req *domain.UpdateMemorialRequest) error
	Delete(id, requesterID int) error
	GetByID(id int) (*domain.MemorialProfile, error)
	Search(query string) ([]*domain.MemorialProfile, error)
	ListByCreator(creatorID int) ([]*domain.MemorialProfile, error)
	GetAll(limit int) ([]*domain.MemorialProfile, error)
}

type memorialService struct {
	repo         repository.MemorialRepository
	activityRepo repository.ActivityRepository
	notifier     Notifier
}

// NewMemorialService creates a new MemorialService
func NewMemorialService(repo repository.MemorialRepository, activityRepo repository.ActivityRepository, notifier Notifier) MemorialService {
	return &memorialService{
		repo:         repo,
		activityRepo: activityRepo,
		notifier:     notifier,
	}
}

// Create creates a memorial profile owned by creatorID. Emits a
// profile_created activity and an owner notification; both are
// best-effort and never fail the creation.
func (s *memorialService) Create(creatorID int, creatorName string, req *domain.CreateMemorialRequest) (*domain.MemorialProfile, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: o nome é obrigatório", common.ErrInvalidInput)
	}

	profile := &domain.MemorialProfile{
		CreatorID: creatorID,
		Name:      req.Name,
		PhotoURL:  req.PhotoURL,
		PhotoKey:  req.PhotoKey,
		BirthDate: req.BirthDate,
		DeathDate: req.DeathDate,
		Biography: req.Biography,
	}

	if err := s.repo.Create(profile); err != nil {
		return nil, err
	}

	s.logActivity(domain.ActivityProfileCreated, profile.ID, &creatorID)

	go s.notify("Novo Perfil Memorial Criado",
		fmt.Sprintf("%s criou um perfil memorial para %s.", creatorName, profile.Name))

	return profile, nil
}

// Update applies a partial update after the ownership check
func (s *memorialService) Update(id, requesterID int, req *domain.UpdateMemorialRequest) error {
	profile, err := s.findProfile(id)
	if err != nil {
		return err
	}
	if profile.CreatorID != requesterID {
		return common.ErrForbidden
	}

	return s.repo.Update(id, req.Fields())
}

// Delete removes a profile after the ownership check. Photos, messages
// and activities of the memorial are left orphaned (no cascade).
func (s *memorialService) Delete(id, requesterID int) error {
	profile, err := s.findProfile(id)
	if err != nil {
		return err
	}
	if profile.CreatorID != requesterID {
		return common.ErrForbidden
	}

	return s.repo.Delete(id)
}

// GetByID returns a profile and counts the visit. Every call increments
// the counter, owner views included.
func (s *memorialService) GetByID(id int) (*domain.MemorialProfile, error) {
	profile, err := s.findProfile(id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.IncrementVisitCount(id); err != nil {
		return nil, err
	}

	return profile, nil
}

// Search matches profile names case-insensitively, newest first, capped
// at 50 results. Infrastructure failures degrade to an empty list.
func (s *memorialService) Search(query string) ([]*domain.MemorialProfile, error) {
	profiles, err := s.repo.SearchByName(query, searchResultLimit)
	if err != nil {
		pkglogger.GetLogger().Warn().Err(err).Str("query", query).Msg("memorial search failed")
		return []*domain.MemorialProfile{}, nil
	}
	return profiles, nil
}

// ListByCreator returns the requester's profiles, newest first
func (s *memorialService) ListByCreator(creatorID int) ([]*domain.MemorialProfile, error) {
	profiles, err := s.repo.FindByCreator(creatorID)
	if err != nil {
		pkglogger.GetLogger().Warn().Err(err).Int("creator_id", creatorID).Msg("memorial list failed")
		return []*domain.MemorialProfile{}, nil
	}
	return profiles, nil
}

// GetAll returns the newest profiles up to limit (default 20)
func (s *memorialService) GetAll(limit int) ([]*domain.MemorialProfile, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	profiles, err := s.repo.FindAll(limit)
	if err != nil {
		pkglogger.GetLogger().Warn().Err(err).Msg("memorial list failed")
		return []*domain.MemorialProfile{}, nil
	}
	return profiles, nil
}

func (s *memorialService) findProfile(id int) (*domain.MemorialProfile, error) {
	profile, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrMemorialNotFound
		}
		return nil, err
	}
	return profile, nil
}

// logActivity appends a feed row; failures are logged and swallowed so a
// secondary write never fails the primary one
func (s *memorialService) logActivity(activityType string, memorialID int, userID *int) {
	err := s.activityRepo.Create(&domain.Activity{
		Type:       activityType,
		MemorialID: memorialID,
		UserID:     userID,
	})
	if err != nil {
		pkglogger.GetLogger().Warn().Err(err).
			Str("type", activityType).
			Int("memorial_id", memorialID).
			Msg("activity write failed")
	}
}

func (s *memorialService) notify(title, content string) {
	if err := s.notifier.Notify(context.Background(), title, content); err != nil {
		pkglogger.GetLogger().Warn().Err(err).Str("title", title).Msg("owner notification failed")
	}
}
