package store

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/giannis-supplies/storefront/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	s, err := New(db)
	require.NoError(t, err)
	return s
}

func TestStore_RoundTrip(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	lines := []models.CartLine{
		{ProductID: 1, Name: "Professional Hair Clipper Pro X1", Price: 89.99, Quantity: 2, Icon: "✂️"},
		{ProductID: 3, Name: "Straight Razor Kit", Price: 45.50, Quantity: 1, Icon: "🪒"},
	}
	require.NoError(t, s.Set(ctx, KeyCart, lines))

	var got []models.CartLine
	found, err := s.Get(ctx, KeyCart, &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, lines, got)
}

func TestStore_AbsentKey(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	var user models.User
	found, err := s.Get(context.Background(), KeyCurrentUser, &user)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_SetOverwritesWholeSnapshot(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyCart, []models.CartLine{{ProductID: 1, Quantity: 5}}))
	require.NoError(t, s.Set(ctx, KeyCart, []models.CartLine{{ProductID: 2, Quantity: 1}}))

	var got []models.CartLine
	found, err := s.Get(ctx, KeyCart, &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ProductID)
}

func TestStore_Remove(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	user := models.User{Username: "gianni", Email: "gianni@example.com"}
	require.NoError(t, s.Set(ctx, KeyCurrentUser, user))
	require.NoError(t, s.Remove(ctx, KeyCurrentUser))

	var got models.User
	found, err := s.Get(ctx, KeyCurrentUser, &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_RemoveMissingKeyIsNoop(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	require.NoError(t, s.Remove(context.Background(), KeyOrders))
}

func TestStore_CorruptRecordFailsClosed(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	err := s.DB.Create(&Record{Key: KeyUsers, Value: []byte("{not json")}).Error
	require.NoError(t, err)

	var users []models.User
	found, err := s.Get(ctx, KeyUsers, &users)
	require.Error(t, err)
	assert.False(t, found)

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KeyUsers, de.Key)
}
