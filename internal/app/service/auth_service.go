package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"swiftie_sanctuary/internal/common"
	"swiftie_sanctuary/internal/common/security"
	"swiftie_sanctuary/internal/domain/model"
	"swiftie_sanctuary/internal/domain/repository"
	"swiftie_sanctuary/internal/domain/session"
)

type AuthService struct {
	userRepo   repository.UserRepository
	sessions   session.Store
	sessionTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, sessions session.Store, sessionTTL time.Duration) *AuthService {
	return &AuthService{userRepo: userRepo, sessions: sessions, sessionTTL: sessionTTL}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, common.NewError(common.ErrValidation, "All fields are required")
	}
	// Length check comes before the hash so a bad request costs nothing.
	if len(req.Password) < 6 {
		return nil, common.NewError(common.ErrValidation, "Password must be at least 6 characters")
	}

	passwordHash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         model.RoleUser, // Never taken from the caller
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = "" // Clear before returning
	return user, nil
}

// Login verifies credentials and establishes a new session. Unknown
// usernames and wrong passwords produce the same error, so a caller cannot
// probe which usernames exist.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*model.User, *model.Session, error) {
	if req.Username == "" || req.Password == "" {
		return nil, nil, common.NewError(common.ErrValidation, "Username and password are required")
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil, common.NewError(common.ErrUnauthorized, "Invalid credentials")
		}
		return nil, nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, nil, common.NewError(common.ErrUnauthorized, "Invalid credentials")
	}

	now := time.Now()
	sess := &model.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, nil, fmt.Errorf("failed to create session: %w", err)
	}

	user.PasswordHash = ""
	return user, sess, nil
}

// Logout destroys the session behind token. An unknown token still counts
// as a successful logout.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}
