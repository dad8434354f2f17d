package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/vantagevc/dealflow-backend/internal/common"
	"github.com/vantagevc/dealflow-backend/internal/domain"
	"github.com/vantagevc/dealflow-backend/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --- Mock UserRepository ---

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(user *domain.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUserRepo) FindByID(id uint) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

// --- Tests ---

func newTestJWTManager() *jwt.Manager {
	return jwt.NewManager("test-secret-key-for-testing-only-32b!", 15, 1440)
}

func hashedPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestLogin_Success(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, newTestJWTManager())

	user := &domain.User{
		ID:             2,
		Email:          "analyst@dealflow.dev",
		HashedPassword: hashedPassword(t, "password123"),
		Role:           domain.RoleAnalyst,
		IsActive:       true,
	}
	repo.On("FindByEmail", "analyst@dealflow.dev").Return(user, nil)

	resp, err := svc.Login("analyst@dealflow.dev", "password123")

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, domain.RoleAnalyst, resp.User.Role)
}

func TestLogin_TokenCarriesActorIdentity(t *testing.T) {
	repo := new(mockUserRepo)
	jwtMgr := newTestJWTManager()
	svc := NewAuthService(repo, jwtMgr)

	user := &domain.User{
		ID:             1,
		Email:          "admin@dealflow.dev",
		HashedPassword: hashedPassword(t, "password123"),
		Role:           domain.RoleAdmin,
		IsActive:       true,
	}
	repo.On("FindByEmail", "admin@dealflow.dev").Return(user, nil)

	resp, err := svc.Login("admin@dealflow.dev", "password123")
	assert.NoError(t, err)

	claims, err := jwtMgr.VerifyToken(resp.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, "admin@dealflow.dev", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, newTestJWTManager())

	user := &domain.User{
		ID:             2,
		Email:          "analyst@dealflow.dev",
		HashedPassword: hashedPassword(t, "password123"),
		IsActive:       true,
	}
	repo.On("FindByEmail", "analyst@dealflow.dev").Return(user, nil)

	_, err := svc.Login("analyst@dealflow.dev", "wrong-password")

	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, newTestJWTManager())

	repo.On("FindByEmail", "nobody@dealflow.dev").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login("nobody@dealflow.dev", "password123")

	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, newTestJWTManager())

	user := &domain.User{
		ID:             3,
		Email:          "former@dealflow.dev",
		HashedPassword: hashedPassword(t, "password123"),
		IsActive:       false,
	}
	repo.On("FindByEmail", "former@dealflow.dev").Return(user, nil)

	_, err := svc.Login("former@dealflow.dev", "password123")

	assert.ErrorIs(t, err, common.ErrUserInactive)
}

func TestRegister_Success(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, newTestJWTManager())

	repo.On("ExistsByEmail", "new@dealflow.dev").Return(false, nil)
	repo.On("Create", mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "new@dealflow.dev" &&
			u.Role == domain.RoleAnalyst &&
			u.IsActive &&
			u.HashedPassword != "password123"
	})).Return(nil)

	user, err := svc.Register(&RegisterRequest{Email: "new@dealflow.dev", Password: "password123"})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleAnalyst, user.Role)
	repo.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, newTestJWTManager())

	repo.On("ExistsByEmail", "taken@dealflow.dev").Return(true, nil)

	_, err := svc.Register(&RegisterRequest{Email: "taken@dealflow.dev", Password: "password123"})

	assert.ErrorIs(t, err, common.ErrUserAlreadyExists)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRegister_InvalidRole(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, newTestJWTManager())

	repo.On("ExistsByEmail", "new@dealflow.dev").Return(false, nil)

	_, err := svc.Register(&RegisterRequest{
		Email:    "new@dealflow.dev",
		Password: "password123",
		Role:     domain.Role("superuser"),
	})

	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestMe_NotFound(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, newTestJWTManager())

	repo.On("FindByID", uint(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Me(42)

	assert.ErrorIs(t, err, common.ErrUserNotFound)
}
