package service

import (
	"errors"
	"testing"
	"time"

	"github.com/lembranca/memorial-backend/internal/common"
	"github.com/lembranca/memorial-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMemorialService() (*MockMemorialRepository, *MockActivityRepository, *stubNotifier, MemorialService) {
	repo := new(MockMemorialRepository)
	activityRepo := new(MockActivityRepository)
	notifier := newStubNotifier()
	svc := NewMemorialService(repo, activityRepo, notifier)
	return repo, activityRepo, notifier, svc
}

func TestCreateMemorialEmitsActivity(t *testing.T) {
	repo, activityRepo, notifier, svc := newMemorialService()

	repo.On("Create", mock.AnythingOfType("*domain.MemorialProfile")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*domain.MemorialProfile).ID = 7
		}).
		Return(nil)
	activityRepo.On("Create", mock.MatchedBy(func(a *domain.Activity) bool {
		return a.Type == domain.ActivityProfileCreated && a.MemorialID == 7 && a.UserID != nil && *a.UserID == 1
	})).Return(nil).Once()

	birth := time.Date(1935, 5, 12, 0, 0, 0, 0, time.UTC)
	death := time.Date(2023, 11, 15, 0, 0, 0, 0, time.UTC)
	profile, err := svc.Create(1, "Ana", &domain.CreateMemorialRequest{
		Name:      "Maria Helena Santos",
		BirthDate: &birth,
		DeathDate: &death,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, profile.ID)
	assert.Equal(t, 1, profile.CreatorID)
	assert.Equal(t, 0, profile.VisitCount)

	select {
	case title := <-notifier.titles:
		assert.Equal(t, "Novo Perfil Memorial Criado", title)
	case <-time.After(time.Second):
		t.Fatal("expected owner notification")
	}

	repo.AssertExpectations(t)
	activityRepo.AssertExpectations(t)
}

func TestCreateMemorialEmptyName(t *testing.T) {
	repo, activityRepo, _, svc := newMemorialService()

	_, err := svc.Create(1, "Ana", &domain.CreateMemorialRequest{Name: "   "})
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	repo.AssertNotCalled(t, "Create", mock.Anything)
	activityRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateMemorialActivityFailureDoesNotFailCreate(t *testing.T) {
	repo, activityRepo, _, svc := newMemorialService()

	repo.On("Create", mock.Anything).Return(nil)
	activityRepo.On("Create", mock.Anything).Return(errors.New("db down"))

	_, err := svc.Create(1, "Ana", &domain.CreateMemorialRequest{Name: "José"})
	assert.NoError(t, err)
}

func TestUpdateMemorialOwnership(t *testing.T) {
	repo, _, _, svc := newMemorialService()

	repo.On("FindByID", 5).Return(&domain.MemorialProfile{ID: 5, CreatorID: 1}, nil)

	name := "Novo Nome"
	req := &domain.UpdateMemorialRequest{Name: &name}

	// Non-creator is rejected
	err := svc.Update(5, 2, req)
	assert.ErrorIs(t, err, common.ErrForbidden)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)

	// Creator succeeds with a partial update of only the sent fields
	repo.On("Update", 5, map[string]interface{}{"name": "Novo Nome"}).Return(nil).Once()
	err = svc.Update(5, 1, req)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateMemorialNotFound(t *testing.T) {
	repo, _, _, svc := newMemorialService()

	repo.On("FindByID", 99).Return(nil, gorm.ErrRecordNotFound)

	err := svc.Update(99, 1, &domain.UpdateMemorialRequest{})
	assert.ErrorIs(t, err, common.ErrMemorialNotFound)
}

func TestDeleteMemorialOwnership(t *testing.T) {
	repo, _, _, svc := newMemorialService()

	repo.On("FindByID", 5).Return(&domain.MemorialProfile{ID: 5, CreatorID: 1}, nil)

	err := svc.Delete(5, 2)
	assert.ErrorIs(t, err, common.ErrForbidden)

	repo.On("Delete", 5).Return(nil).Once()
	err = svc.Delete(5, 1)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

// Deleting a profile removes only the profile row. Photos, messages and
// activities referencing it stay behind; the service layer issues no
// cascade of any kind.
func TestDeleteMemorialLeavesChildRowsInPlace(t *testing.T) {
	repo, activityRepo, _, svc := newMemorialService()

	repo.On("FindByID", 5).Return(&domain.MemorialProfile{ID: 5, CreatorID: 1}, nil)
	repo.On("Delete", 5).Return(nil).Once()

	require.NoError(t, svc.Delete(5, 1))

	repo.AssertNumberOfCalls(t, "Delete", 1)
	activityRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestGetByIDIncrementsVisitCount(t *testing.T) {
	repo, _, _, svc := newMemorialService()

	repo.On("FindByID", 3).Return(&domain.MemorialProfile{ID: 3, CreatorID: 1}, nil)
	repo.On("IncrementVisitCount", 3).Return(nil)

	// Every fetch counts, including the creator viewing their own profile
	_, err := svc.GetByID(3)
	require.NoError(t, err)
	_, err = svc.GetByID(3)
	require.NoError(t, err)

	repo.AssertNumberOfCalls(t, "IncrementVisitCount", 2)
}

func TestGetByIDNotFound(t *testing.T) {
	repo, _, _, svc := newMemorialService()

	repo.On("FindByID", 99).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetByID(99)
	assert.ErrorIs(t, err, common.ErrMemorialNotFound)
	repo.AssertNotCalled(t, "IncrementVisitCount", mock.Anything)
}

func TestSearchCapsAtFifty(t *testing.T) {
	repo, _, _, svc := newMemorialService()

	repo.On("SearchByName", "Maria", 50).
		Return([]*domain.MemorialProfile{{ID: 1, Name: "Maria Helena Santos"}}, nil)

	profiles, err := svc.Search("Maria")
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Maria Helena Santos", profiles[0].Name)
}

func TestSearchDegradesToEmptyOnInfrastructureError(t *testing.T) {
	repo, _, _, svc := newMemorialService()

	repo.On("SearchByName", "Maria", 50).Return(nil, errors.New("connection refused"))

	profiles, err := svc.Search("Maria")
	assert.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestGetAllDefaultLimit(t *testing.T) {
	repo, _, _, svc := newMemorialService()

	repo.On("FindAll", 20).Return([]*domain.MemorialProfile{}, nil)

	_, err := svc.GetAll(0)
	require.NoError(t, err)
	repo.AssertCalled(t, "FindAll", 20)
}
