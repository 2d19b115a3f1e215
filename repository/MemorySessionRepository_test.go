package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voltstore/repository"
	"voltstore/store"
)

func TestMemorySessionLifecycle(t *testing.T) {
	sessions := repository.NewMemorySessionRepository()

	sessionId, err := sessions.CreateSession(7, true)
	require.NoError(t, err)
	require.NotEmpty(t, sessionId)

	ok, err := sessions.CheckSession(sessionId)
	require.NoError(t, err)
	assert.True(t, ok)

	userId, isAdmin, exists, err := sessions.GetSessionInfo(sessionId)
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, 7, userId)
	assert.True(t, isAdmin)

	require.NoError(t, sessions.DeleteSession(sessionId))
	ok, err = sessions.CheckSession(sessionId)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemorySessionUnknownToken(t *testing.T) {
	sessions := repository.NewMemorySessionRepository()

	ok, err := sessions.CheckSession("not-a-token")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, exists, err := sessions.GetSessionInfo("not-a-token")
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting an unknown session is a no-op.
	assert.NoError(t, sessions.DeleteSession("not-a-token"))
}

func TestMemorySessionRefreshExpiry(t *testing.T) {
	sessions := repository.NewMemorySessionRepository()

	sessionId, err := sessions.CreateSession(1, false)
	require.NoError(t, err)

	// Refresh to an already-past deadline and the session is gone.
	require.NoError(t, sessions.RefreshSession(sessionId, -time.Second))
	ok, err := sessions.CheckSession(sessionId)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemorySnapshotRepo(t *testing.T) {
	snapshots := repository.NewMemorySnapshotRepository()

	_, exists, err := snapshots.Load()
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, snapshots.Save(store.Snapshot{Wishlist: []int{1, 2}}))
	snap, exists, err := snapshots.Load()
	require.NoError(t, err)
	require.True(t, exists)
	assert.Len(t, snap.Wishlist, 2)
	assert.Equal(t, 1, snapshots.Saves)
}
