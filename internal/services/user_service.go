package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tdinh-lab/stock-advisor/internal/apperrors"
	"github.com/tdinh-lab/stock-advisor/internal/db"
	"github.com/tdinh-lab/stock-advisor/internal/models"
)

// userService implements the UserService interface
type userService struct {
	db *db.DB
}

// NewUserService creates a new user service
func NewUserService(database *db.DB) UserService {
	return &userService{db: database}
}

func (s *userService) Register(ctx context.Context, username, password, name, email string) (*models.User, error) {
	if username == "" || password == "" || name == "" || email == "" {
		return nil, apperrors.Validation("All fields are required")
	}

	user := &models.User{
		Username: username,
		Name:     name,
		Email:    email,
	}
	if err := user.Validate(); err != nil {
		return nil, apperrors.Validation("%s", err.Error())
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if count > 0 {
		return nil, apperrors.Conflict("Username already exists")
	}

	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if count > 0 {
		return nil, apperrors.Conflict("Email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		// The unique indexes close the check-then-insert race; a duplicate
		// slipping past the checks above still surfaces as a conflict.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("Username already exists")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user.Portfolios = []models.Portfolio{}
	return user, nil
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, apperrors.Validation("Username and password are required")
	}

	var user models.User
	err := s.db.WithContext(ctx).
		Preload("Portfolios.Holdings").
		Where("username = ?", username).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Unauthorized("Invalid username or password")
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.Unauthorized("Invalid username or password")
	}

	// Empty slices, not nulls, on the wire.
	if user.Portfolios == nil {
		user.Portfolios = []models.Portfolio{}
	}
	for i := range user.Portfolios {
		if user.Portfolios[i].Holdings == nil {
			user.Portfolios[i].Holdings = []models.Holding{}
		}
	}

	return &user, nil
}
