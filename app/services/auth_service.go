package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/fabiogif/moday-backoffice/app/models"
	"github.com/fabiogif/moday-backoffice/app/repositories"
	"github.com/fabiogif/moday-backoffice/pkg/auth"
	"github.com/fabiogif/moday-backoffice/pkg/logger"
	"github.com/fabiogif/moday-backoffice/pkg/orm"
)

// ErrInvalidCredentials covers both unknown email and wrong password, so
// the response never reveals which one failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// TokenPair is what a successful login or refresh returns.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RegisterInput is the sign-up payload.
type RegisterInput struct {
	Name                 string `json:"name"                  validate:"required,min=2,max=255"`
	Email                string `json:"email"                 validate:"required,email"`
	Password             string `json:"password"              validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,confirmed"`
}

// LoginInput is the login payload.
type LoginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService() *AuthService {
	return &AuthService{users: repositories.NewUserRepository()}
}

// Register creates a new operator account with a hashed password.
func (s *AuthService) Register(input RegisterInput) (models.User, error) {
	if _, err := s.users.FindByEmail(input.Email); err == nil {
		return models.User{}, fieldErrf("email", "The email has already been taken.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hash,
		Role:     models.RoleUser,
	}
	if err := s.users.Create(&user); err != nil {
		return models.User{}, err
	}

	logger.Info("auth: user registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// Login verifies the credentials and issues a token pair.
func (s *AuthService) Login(input LoginInput) (TokenPair, models.User, error) {
	user, err := s.users.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenPair{}, models.User{}, ErrInvalidCredentials
		}
		return TokenPair{}, models.User{}, err
	}

	if !auth.CheckPassword(user.Password, input.Password) {
		return TokenPair{}, models.User{}, ErrInvalidCredentials
	}

	pair, err := s.issueTokens(user)
	return pair, user, err
}

// Refresh validates a refresh token and issues a fresh pair.
func (s *AuthService) Refresh(refreshToken string) (TokenPair, error) {
	claims, err := auth.ValidateToken(refreshToken)
	if err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}

	user, err := s.users.FindByID(claims.UserID)
	if err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// Profile loads the authenticated user's account.
func (s *AuthService) Profile(userID uint) (models.User, error) {
	return s.users.FindByID(userID)
}

// Users returns one page of accounts (admin listing).
func (s *AuthService) Users(page, limit int) ([]models.User, orm.Pagination, error) {
	return s.users.All(page, limit)
}

func (s *AuthService) issueTokens(user models.User) (TokenPair, error) {
	access, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := auth.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
