package service

import (
	"github.com/lembranca/memorial-backend/internal/domain"
	"github.com/lembranca/memorial-backend/internal/repository"
	pkglogger "github.com/lembranca/memorial-backend/pkg/logger"
)

// ActivityService read side of the activity feed. Writes happen inside
// the memorial, photo and message services.
type ActivityService interface {
	GetRecent(limit int) ([]*domain.Activity, error)
}

type activityService struct {
	repo repository.ActivityRepository
}

// NewActivityService creates a new ActivityService
func NewActivityService(repo repository.ActivityRepository) ActivityService {
	return &activityService{repo: repo}
}

// GetRecent returns the newest feed entries up to limit (default 20)
func (s *activityService) GetRecent(limit int) ([]*domain.Activity, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	activities, err := s.repo.FindRecent(limit)
	if err != nil {
		pkglogger.GetLogger().Warn().Err(err).Msg("activity list failed")
		return []*domain.Activity{}, nil
	}
	return activities, nil
}
