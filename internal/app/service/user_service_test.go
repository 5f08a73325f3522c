package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swiftie_sanctuary/internal/common"
)

func TestUserDelete_SelfDeletionGuard(t *testing.T) {
	repo := &fakeUserRepo{deleteUsername: "admin"}
	svc := NewUserService(repo)

	_, err := svc.Delete(context.Background(), "u-1", "u-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidation))
	assert.Equal(t, "Cannot delete your own account", err.Error())
	assert.Empty(t, repo.deletedID, "the delete must not reach the store")
}

func TestUserDelete_OtherUser(t *testing.T) {
	repo := &fakeUserRepo{deleteUsername: "bob"}
	svc := NewUserService(repo)

	message, err := svc.Delete(context.Background(), "u-2", "u-1")
	require.NoError(t, err)
	assert.Equal(t, "User bob deleted successfully", message)
	assert.Equal(t, "u-2", repo.deletedID)
}

func TestUserDelete_NotFoundPassesThrough(t *testing.T) {
	repo := &fakeUserRepo{deleteErr: common.NewError(common.ErrNotFound, "User not found")}
	svc := NewUserService(repo)

	_, err := svc.Delete(context.Background(), "ghost", "u-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}
