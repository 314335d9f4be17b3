package service

import (
	"context"
	"sync"

	"github.com/lembranca/memorial-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockMemorialRepository is a mock implementation of MemorialRepository
type MockMemorialRepository struct {
	mock.Mock
}

func (m *MockMemorialRepository) Create(profile *domain.MemorialProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockMemorialRepository) FindByID(id int) (*domain.MemorialProfile, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MemorialProfile), args.Error(1)
}

func (m *MockMemorialRepository) FindByCreator(creatorID int) ([]*domain.MemorialProfile, error) {
	args := m.Called(creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MemorialProfile), args.Error(1)
}

func (m *MockMemorialRepository) FindAll(limit int) ([]*domain.MemorialProfile, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MemorialProfile), args.Error(1)
}

func (m *MockMemorialRepository) SearchByName(query string, limit int) ([]*domain.MemorialProfile, error) {
	args := m.Called(query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MemorialProfile), args.Error(1)
}

func (m *MockMemorialRepository) Update(id int, updates map[string]interface{}) error {
	args := m.Called(id, updates)
	return args.Error(0)
}

func (m *MockMemorialRepository) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMemorialRepository) IncrementVisitCount(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockPhotoRepository is a mock implementation of PhotoRepository
type MockPhotoRepository struct {
	mock.Mock
}

func (m *MockPhotoRepository) Create(photo *domain.MemorialPhoto) error {
	args := m.Called(photo)
	return args.Error(0)
}

func (m *MockPhotoRepository) FindByMemorial(memorialID int) ([]*domain.MemorialPhoto, error) {
	args := m.Called(memorialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MemorialPhoto), args.Error(1)
}

func (m *MockPhotoRepository) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockMessageRepository is a mock implementation of MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(msg *domain.MemorialMessage) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockMessageRepository) FindByID(id int) (*domain.MemorialMessage, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MemorialMessage), args.Error(1)
}

func (m *MockMessageRepository) FindByMemorial(memorialID int, includeHidden bool) ([]*domain.MemorialMessage, error) {
	args := m.Called(memorialID, includeHidden)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MemorialMessage), args.Error(1)
}

func (m *MockMessageRepository) FindReported() ([]*domain.MemorialMessage, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MemorialMessage), args.Error(1)
}

func (m *MockMessageRepository) MarkReported(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMessageRepository) SetHidden(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMessageRepository) Unhide(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockActivityRepository is a mock implementation of ActivityRepository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(activity *domain.Activity) error {
	args := m.Called(activity)
	return args.Error(0)
}

func (m *MockActivityRepository) FindRecent(limit int) ([]*domain.Activity, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Activity), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id int) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDs(ids []int) ([]*domain.User, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateLastSignedIn(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

// stubNotifier records notifications; safe for the async publish path
type stubNotifier struct {
	mu     sync.Mutex
	titles chan string
}

func newStubNotifier() *stubNotifier {
	return &stubNotifier{titles: make(chan string, 8)}
}

func (n *stubNotifier) Notify(_ context.Context, title, _ string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	select {
	case n.titles <- title:
	default:
	}
	return nil
}
