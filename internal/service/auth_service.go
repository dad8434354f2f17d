package service

import (
	"errors"

	"github.com/vantagevc/dealflow-backend/internal/common"
	"github.com/vantagevc/dealflow-backend/internal/domain"
	"github.com/vantagevc/dealflow-backend/internal/repository"
	"github.com/vantagevc/dealflow-backend/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=8"`
	Role     domain.Role `json:"role"`
}

// LoginResponse login response
type LoginResponse struct {
	User         *domain.UserResponse `json:"user"`
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
	TokenType    string               `json:"token_type"`
}

// AuthService authentication business logic
type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
	Register(req *RegisterRequest) (*domain.UserResponse, error)
	Me(userID uint) (*domain.UserResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtManager *jwt.Manager
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtManager *jwt.Manager) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// Login authenticates a user and returns tokens
func (s *authService) Login(email, password string) (*LoginResponse, error) {
	// 1. Find user
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, common.ErrUserInactive
	}

	// 2. Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	// 3. Generate JWT tokens
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		User:         user.ToResponse(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

// Register creates a new user account
func (s *authService) Register(req *RegisterRequest) (*domain.UserResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrUserAlreadyExists
	}

	role := req.Role
	if role == "" {
		role = domain.RoleAnalyst
	}
	if !role.IsValid() {
		return nil, common.ErrInvalidInput
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:          req.Email,
		HashedPassword: string(hashed),
		Role:           role,
		IsActive:       true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user.ToResponse(), nil
}

// Me returns the authenticated user's profile
func (s *authService) Me(userID uint) (*domain.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}
	return user.ToResponse(), nil
}
