package badger

import (
	"context"
	"testing"
	"time"

	"github.com/rcastellano/ava/internal/interfaces"
	"github.com/rcastellano/ava/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"
)

func newTestDB(t *testing.T) *BadgerDB {
	t.Helper()

	tmpDir := t.TempDir()

	options := badgerhold.DefaultOptions
	options.Dir = tmpDir
	options.ValueDir = tmpDir
	options.Logger = nil

	store, err := badgerhold.Open(options)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return &BadgerDB{store: store, logger: arbor.NewLogger()}
}

func TestKVStorage_SetGetDelete(t *testing.T) {
	db := newTestDB(t)
	storage := NewKVStorage(db, arbor.NewLogger())
	ctx := context.Background()

	err := storage.Set(ctx, "upload_abc", "payload", "transcript.pdf")
	require.NoError(t, err)

	value, err := storage.Get(ctx, "upload_abc")
	require.NoError(t, err)
	assert.Equal(t, "payload", value)

	// Keys are case-insensitive.
	value, err = storage.Get(ctx, "UPLOAD_ABC")
	require.NoError(t, err)
	assert.Equal(t, "payload", value)

	err = storage.Delete(ctx, "upload_abc")
	require.NoError(t, err)

	_, err = storage.Get(ctx, "upload_abc")
	assert.ErrorIs(t, err, interfaces.ErrKeyNotFound)
}

func TestKVStorage_SetPreservesCreatedAt(t *testing.T) {
	db := newTestDB(t)
	storage := NewKVStorage(db, arbor.NewLogger())
	ctx := context.Background()

	require.NoError(t, storage.Set(ctx, "key", "first", ""))
	pairs, err := storage.List(ctx)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	created := pairs[0].CreatedAt

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, storage.Set(ctx, "key", "second", ""))

	pairs, err = storage.List(ctx)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "second", pairs[0].Value)
	assert.Equal(t, created, pairs[0].CreatedAt)
	assert.True(t, pairs[0].UpdatedAt.After(created))
}

func TestIngestStatusStorage_SaveReplacesPerProfile(t *testing.T) {
	db := newTestDB(t)
	storage := NewIngestStatusStorage(db, arbor.NewLogger())
	ctx := context.Background()

	_, err := storage.Get(ctx, "journal")
	assert.ErrorIs(t, err, interfaces.ErrKeyNotFound)

	first := &models.IngestStatus{
		ProfileKey: "journal",
		SourceID:   "upload_1",
		ChunkCount: 4,
		IngestedAt: time.Now().UTC(),
	}
	require.NoError(t, storage.Save(ctx, first))

	second := &models.IngestStatus{
		ProfileKey: "journal",
		SourceID:   "upload_2",
		ChunkCount: 9,
		IngestedAt: time.Now().UTC(),
	}
	require.NoError(t, storage.Save(ctx, second))

	got, err := storage.Get(ctx, "journal")
	require.NoError(t, err)
	assert.Equal(t, "upload_2", got.SourceID)
	assert.Equal(t, 9, got.ChunkCount)
}

func TestIngestStatusStorage_RequiresProfileKey(t *testing.T) {
	db := newTestDB(t)
	storage := NewIngestStatusStorage(db, arbor.NewLogger())

	err := storage.Save(context.Background(), &models.IngestStatus{})
	require.Error(t, err)
}
