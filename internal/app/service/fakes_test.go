package service

import (
	"context"

	"swiftie_sanctuary/internal/common"
	"swiftie_sanctuary/internal/domain/model"
)

type fakeUserRepo struct {
	created   *model.User
	createErr error

	findUser *model.User
	findErr  error

	users   []model.User
	listErr error

	deletedID      string
	deleteUsername string
	deleteErr      error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *user
	f.created = &cp
	return nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.findUser == nil || f.findUser.Username != username {
		return nil, common.ErrNotFound
	}
	cp := *f.findUser
	return &cp, nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]model.User, error) {
	return f.users, f.listErr
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) (string, error) {
	if f.deleteErr != nil {
		return "", f.deleteErr
	}
	f.deletedID = id
	return f.deleteUsername, nil
}

type fakeMemberRepo struct {
	members []model.MemberWithOwner
	listErr error

	exists    bool
	existsErr error

	created   *model.Member
	createErr error

	updateErr error
	deleteErr error
	deletedID string
}

func (f *fakeMemberRepo) ListWithOwners(ctx context.Context) ([]model.MemberWithOwner, error) {
	return f.members, f.listErr
}

func (f *fakeMemberRepo) ExistsForUser(ctx context.Context, userID string) (bool, error) {
	return f.exists, f.existsErr
}

func (f *fakeMemberRepo) Create(ctx context.Context, member *model.Member) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *member
	f.created = &cp
	return nil
}

func (f *fakeMemberRepo) Update(ctx context.Context, member *model.Member) error {
	return f.updateErr
}

func (f *fakeMemberRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

type fakeSessionStore struct {
	created   *model.Session
	createErr error

	deletedToken string
	deleteErr    error
}

func (f *fakeSessionStore) Create(ctx context.Context, s *model.Session) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *s
	f.created = &cp
	return nil
}

func (f *fakeSessionStore) Get(ctx context.Context, token string) (*model.Session, error) {
	if f.created == nil || f.created.Token != token {
		return nil, common.ErrNotFound
	}
	cp := *f.created
	return &cp, nil
}

func (f *fakeSessionStore) Delete(ctx context.Context, token string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedToken = token
	return nil
}

func (f *fakeSessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}
