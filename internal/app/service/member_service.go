package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"swiftie_sanctuary/internal/common"
	"swiftie_sanctuary/internal/domain/model"
	"swiftie_sanctuary/internal/domain/repository"
)

type MemberService struct {
	memberRepo repository.MemberRepository
}

func NewMemberService(memberRepo repository.MemberRepository) *MemberService {
	return &MemberService{memberRepo: memberRepo}
}

type CreateMemberRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Song      string `json:"song"`
	Story     string `json:"story"`
}

type UpdateMemberRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	FavoriteSong string `json:"favorite_song"`
	Story        string `json:"story"`
}

func (s *MemberService) List(ctx context.Context) ([]model.MemberWithOwner, error) {
	return s.memberRepo.ListWithOwners(ctx)
}

func (s *MemberService) Create(ctx context.Context, userID string, req CreateMemberRequest) (*model.Member, error) {
	if req.FirstName == "" || req.LastName == "" || req.Song == "" || req.Story == "" {
		return nil, common.NewError(common.ErrValidation, "First name, last name, song and story are required")
	}

	// The existence check and the insert are separate statements, not a
	// transaction, and members.user_id carries no unique constraint. Two
	// concurrent submissions by one user can both pass the check; the
	// sequential case always rejects the second attempt.
	exists, err := s.memberRepo.ExistsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing story: %w", err)
	}
	if exists {
		return nil, common.NewError(common.ErrValidation, "You have already submitted a story")
	}

	member := &model.Member{
		ID:           uuid.NewString(),
		UserID:       &userID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		FavoriteSong: req.Song,
		Story:        req.Story,
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *MemberService) Update(ctx context.Context, id string, req UpdateMemberRequest) (*model.Member, error) {
	if req.FirstName == "" || req.LastName == "" || req.FavoriteSong == "" || req.Story == "" {
		return nil, common.NewError(common.ErrValidation, "All fields are required")
	}

	member := &model.Member{
		ID:           id,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		FavoriteSong: req.FavoriteSong,
		Story:        req.Story,
	}
	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *MemberService) Delete(ctx context.Context, id string) error {
	return s.memberRepo.Delete(ctx, id)
}
