package service

import (
	"strings"
	"testing"
	"time"

	"github.com/lembranca/memorial-backend/internal/common"
	"github.com/lembranca/memorial-backend/internal/domain"
	pkgjwt "github.com/lembranca/memorial-backend/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthService() (*MockUserRepository, *pkgjwt.Manager, AuthService) {
	userRepo := new(MockUserRepository)
	jwtManager := pkgjwt.NewManager("test-secret", time.Hour)
	svc := NewAuthService(userRepo, jwtManager)
	return userRepo, jwtManager, svc
}

func TestRegisterNewAccount(t *testing.T) {
	userRepo, jwtManager, svc := newAuthService()

	userRepo.On("ExistsByEmail", "ana@example.com").Return(false, nil)
	userRepo.On("Create", mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "ana@example.com" &&
			u.LoginMethod == "email" &&
			u.Role == domain.RoleUser &&
			strings.HasPrefix(u.OpenID, "email_")
	})).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.User).ID = 1
	}).Return(nil)

	resp, err := svc.Register(&RegisterRequest{
		Name:     "Ana Silva",
		Email:    "ana@example.com",
		Password: "segredo123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Silva", resp.User.Name)

	// Password is stored hashed, never verbatim
	created := userRepo.Calls[1].Arguments.Get(0).(*domain.User)
	assert.NotEqual(t, "segredo123", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("segredo123")))

	claims, err := jwtManager.VerifyToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	userRepo, _, svc := newAuthService()

	userRepo.On("ExistsByEmail", "ana@example.com").Return(true, nil)

	_, err := svc.Register(&RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "segredo123"})
	assert.ErrorIs(t, err, common.ErrUserAlreadyExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLoginSuccess(t *testing.T) {
	userRepo, jwtManager, svc := newAuthService()

	hashed, err := bcrypt.GenerateFromPassword([]byte("segredo123"), bcryptCost)
	require.NoError(t, err)

	userRepo.On("FindByEmail", "ana@example.com").Return(&domain.User{
		ID:       1,
		Name:     "Ana Silva",
		Email:    "ana@example.com",
		Password: string(hashed),
		Role:     domain.RoleUser,
	}, nil)
	userRepo.On("UpdateLastSignedIn", 1).Return(nil).Maybe()

	resp, err := svc.Login(&LoginRequest{Email: "ana@example.com", Password: "segredo123"})
	require.NoError(t, err)

	claims, err := jwtManager.VerifyToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "Ana Silva", claims.Name)
}

func TestLoginWrongPassword(t *testing.T) {
	userRepo, _, svc := newAuthService()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("segredo123"), bcryptCost)
	userRepo.On("FindByEmail", "ana@example.com").Return(&domain.User{
		ID:       1,
		Email:    "ana@example.com",
		Password: string(hashed),
	}, nil)

	_, err := svc.Login(&LoginRequest{Email: "ana@example.com", Password: "errada"})
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	userRepo, _, svc := newAuthService()

	userRepo.On("FindByEmail", "ninguem@example.com").Return(nil, gorm.ErrRecordNotFound)

	// Same error as a wrong password; no account enumeration
	_, err := svc.Login(&LoginRequest{Email: "ninguem@example.com", Password: "x"})
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLoginSocialAccountWithoutPassword(t *testing.T) {
	userRepo, _, svc := newAuthService()

	userRepo.On("FindByEmail", "social@example.com").Return(&domain.User{
		ID:          2,
		Email:       "social@example.com",
		LoginMethod: "google",
	}, nil)

	_, err := svc.Login(&LoginRequest{Email: "social@example.com", Password: "x"})
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	userRepo, _, svc := newAuthService()

	userRepo.On("FindByID", 1).Return(&domain.User{ID: 1, Name: "Ana Silva", Email: "ana@example.com"}, nil)
	userRepo.On("FindByID", 99).Return(nil, gorm.ErrRecordNotFound)

	me, err := svc.Me(1)
	require.NoError(t, err)
	assert.Equal(t, "Ana Silva", me.Name)

	_, err = svc.Me(99)
	assert.ErrorIs(t, err, common.ErrUserNotFound)
}
