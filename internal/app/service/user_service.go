package service

import (
	"context"
	"fmt"

	"swiftie_sanctuary/internal/common"
	"swiftie_sanctuary/internal/domain/model"
	"swiftie_sanctuary/internal/domain/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

// Delete removes a user by id and returns a confirmation message naming the
// deleted account. An admin cannot delete their own account.
func (s *UserService) Delete(ctx context.Context, id, callerID string) (string, error) {
	if id == callerID {
		return "", common.NewError(common.ErrValidation, "Cannot delete your own account")
	}

	username, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("User %s deleted successfully", username), nil
}
