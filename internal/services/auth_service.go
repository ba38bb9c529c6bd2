package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/unnati04102007/ResQNet/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

// Register implements domain.AuthService
func (s *AuthServiceImpl) Register(ctx context.Context, name, email, password, confirm string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))

	if name == "" {
		return nil, domain.NewValidationError("name", "name is required")
	}
	if email == "" {
		return nil, domain.NewValidationError("email", "email is required")
	}
	if password == "" {
		return nil, domain.NewValidationError("password", "password is required")
	}
	if password != confirm {
		return nil, domain.NewValidationError("confirm_password", "passwords do not match")
	}

	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existingUser != nil {
		return nil, domain.ErrEmailTaken
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Language:     "en",
		Role:         "user",
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique index is the last word on duplicate emails.
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login implements domain.AuthService. Failures are reported uniformly so
// the response does not reveal whether the email exists.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(user.ID, user.Role, "")
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &domain.AuthResult{
		User:        user,
		AccessToken: accessToken,
		ExpiresIn:   15 * 60,
	}, nil
}

// SetLanguage implements domain.AuthService
func (s *AuthServiceImpl) SetLanguage(ctx context.Context, userID uint, language string) error {
	if language == "" {
		return domain.NewValidationError("lang", "language is required")
	}
	return s.userRepo.UpdateLanguage(ctx, userID, language)
}
