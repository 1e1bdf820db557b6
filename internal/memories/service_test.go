package memories

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslife/CampusLife_Go/internal/domain"
	"github.com/campuslife/CampusLife_Go/internal/storage"
)

func newTestService(t *testing.T) (Service, *FakeRepository, storage.Store) {
	t.Helper()
	repo := NewFakeRepository()
	files, err := storage.NewDiskStore(t.TempDir())
	require.NoError(t, err)
	return NewService(repo, files), repo, files
}

func TestAddAndOpenPhoto(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	memory, err := svc.Add(ctx, "u1", "freshers week", "image/jpeg", strings.NewReader("jpeg bytes"))
	require.NoError(t, err)
	assert.NotEmpty(t, memory.ID)
	assert.True(t, strings.HasSuffix(memory.FileID, ".jpg"))

	reader, fileID, err := svc.OpenPhoto(ctx, memory.ID)
	require.NoError(t, err)
	defer reader.Close()
	assert.Equal(t, memory.FileID, fileID)

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))
}

func TestAdd_Validation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "", "caption", "image/jpeg", strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)

	_, err = svc.Add(ctx, "u1", "caption", "application/pdf", strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Add(ctx, "u1", strings.Repeat("a", MaxCaptionLength+1), "image/png", strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDelete_RemovesFileAndRow(t *testing.T) {
	svc, _, files := newTestService(t)
	ctx := context.Background()

	memory, err := svc.Add(ctx, "u1", "", "image/png", strings.NewReader("png bytes"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "u1", memory.ID))

	_, _, err = svc.OpenPhoto(ctx, memory.ID)
	assert.ErrorIs(t, err, domain.ErrMemoryNotFound)

	_, err = files.Open(ctx, memory.FileID)
	assert.ErrorIs(t, err, storage.ErrFileNotFound)
}

func TestDelete_UploaderOnly(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	memory, err := svc.Add(ctx, "u1", "", "image/png", strings.NewReader("png bytes"))
	require.NoError(t, err)

	err = svc.Delete(ctx, "u2", memory.ID)
	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestDelete_ToleratesMissingFile(t *testing.T) {
	svc, _, files := newTestService(t)
	ctx := context.Background()

	memory, err := svc.Add(ctx, "u1", "", "image/webp", strings.NewReader("webp bytes"))
	require.NoError(t, err)

	// Simulate a half-deleted memory whose file is already gone
	require.NoError(t, files.Delete(ctx, memory.FileID))

	assert.NoError(t, svc.Delete(ctx, "u1", memory.ID))
}

func TestList_NewestFirst(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Add(ctx, "u1", "one", "image/png", strings.NewReader("1"))
	require.NoError(t, err)
	second, err := svc.Add(ctx, "u1", "two", "image/png", strings.NewReader("2"))
	require.NoError(t, err)

	memories, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, memories, 2)
	assert.Equal(t, second.ID, memories[0].ID)
	assert.Equal(t, first.ID, memories[1].ID)
}
