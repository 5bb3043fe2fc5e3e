package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollow_AddsBothSides(t *testing.T) {
	repo := newFakeUserRepo()
	alice := repo.addUser("alice")
	bob := repo.addUser("bob")

	svc := NewFollowService(repo)

	err := svc.Follow(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{"bob"}, alice.Following)
	assert.Equal(t, []string{"alice"}, bob.Followers)
}

func TestFollow_DuplicateIsNoOp(t *testing.T) {
	repo := newFakeUserRepo()
	alice := repo.addUser("alice")
	bob := repo.addUser("bob")

	svc := NewFollowService(repo)

	require.NoError(t, svc.Follow(context.Background(), alice.ID, bob.ID))
	require.NoError(t, svc.Follow(context.Background(), alice.ID, bob.ID))

	assert.Len(t, alice.Following, 1)
	assert.Len(t, bob.Followers, 1)
}

func TestFollow_SelfReferenceRejected(t *testing.T) {
	repo := newFakeUserRepo()
	alice := repo.addUser("alice")

	svc := NewFollowService(repo)

	err := svc.Follow(context.Background(), alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrUserFollowSelf)

	err = svc.Unfollow(context.Background(), alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrUserFollowSelf)
}

func TestFollow_UnknownUserRejected(t *testing.T) {
	repo := newFakeUserRepo()
	alice := repo.addUser("alice")

	svc := NewFollowService(repo)

	err := svc.Follow(context.Background(), alice.ID, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)

	err = svc.Follow(context.Background(), "ghost", alice.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUnfollow_RemovesBothSides(t *testing.T) {
	repo := newFakeUserRepo()
	alice := repo.addUser("alice")
	bob := repo.addUser("bob")

	svc := NewFollowService(repo)

	require.NoError(t, svc.Follow(context.Background(), alice.ID, bob.ID))
	require.NoError(t, svc.Unfollow(context.Background(), alice.ID, bob.ID))

	assert.Empty(t, alice.Following)
	assert.Empty(t, bob.Followers)
}

func TestUnfollow_WithoutFollowIsNoOp(t *testing.T) {
	repo := newFakeUserRepo()
	alice := repo.addUser("alice")
	bob := repo.addUser("bob")

	svc := NewFollowService(repo)

	err := svc.Unfollow(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)

	assert.Empty(t, alice.Following)
	assert.Empty(t, bob.Followers)
}
