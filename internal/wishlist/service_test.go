package wishlist

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslife/CampusLife_Go/internal/domain"
)

func TestCreateAndList_TokenNeverExposed(t *testing.T) {
	svc := NewService(NewFakeRepository())
	ctx := context.Background()
	token := uuid.NewString()

	item, err := svc.Create(ctx, "a quieter library floor", "please", token)
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Empty(t, items[0].OwnerToken)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(NewFakeRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, "   ", "", uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Create(ctx, strings.Repeat("a", MaxTitleLength+1), "", uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Create(ctx, "ok", strings.Repeat("a", MaxDescriptionLength+1), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Create(ctx, "ok", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_RequiresMatchingToken(t *testing.T) {
	svc := NewService(NewFakeRepository())
	ctx := context.Background()
	token := uuid.NewString()

	item, err := svc.Create(ctx, "original", "", token)
	require.NoError(t, err)

	_, err = svc.Update(ctx, item.ID, "hijacked", "", uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	updated, err := svc.Update(ctx, item.ID, "edited", "with detail", token)
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Title)
	assert.Empty(t, updated.OwnerToken)

	// Token keeps working after an update
	_, err = svc.Update(ctx, item.ID, "edited again", "", token)
	assert.NoError(t, err)
}

func TestDelete_RequiresMatchingToken(t *testing.T) {
	svc := NewService(NewFakeRepository())
	ctx := context.Background()
	token := uuid.NewString()

	item, err := svc.Create(ctx, "delete me", "", token)
	require.NoError(t, err)

	err = svc.Delete(ctx, item.ID, "wrong-token")
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	require.NoError(t, svc.Delete(ctx, item.ID, token))

	err = svc.Delete(ctx, item.ID, token)
	assert.ErrorIs(t, err, domain.ErrWishlistItemNotFound)
}

func TestUpdate_UnknownItem(t *testing.T) {
	svc := NewService(NewFakeRepository())

	_, err := svc.Update(context.Background(), "ghost", "title", "", uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrWishlistItemNotFound)
}
