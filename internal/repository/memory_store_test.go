package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliiaycicek/My-Portfolio/internal/models"
)

func TestMemoryStore_ConcurrentInsertsGetUniqueIDs(t *testing.T) {
	store := NewMemoryStore[models.Skill]()
	ctx := context.Background()

	const workers = 50
	ids := make(chan int64, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := store.Insert(ctx, models.Skill{Name: "Go"})
			assert.NoError(t, err)
			ids <- created.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]struct{}, workers)
	for id := range ids {
		_, dup := seen[id]
		assert.False(t, dup, "id %d выдан дважды", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, workers)
}

func TestMemoryStore_QueryKeepsInsertionOrder(t *testing.T) {
	store := NewMemoryStore[models.Skill]()
	ctx := context.Background()

	for _, name := range []string{"Go", "SQL", "Docker"} {
		_, err := store.Insert(ctx, models.Skill{Name: name})
		require.NoError(t, err)
	}

	all, err := store.Query(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, []string{all[0].Name, all[1].Name, all[2].Name})
}

func TestMemoryStore_ReplaceMissing(t *testing.T) {
	store := NewMemoryStore[models.Skill]()

	err := store.Replace(context.Background(), models.Skill{BaseEntity: models.BaseEntity{ID: 1}})
	assert.ErrorIs(t, err, ErrNotFound)

	_, ok := store.Raw(1)
	assert.False(t, ok)
}

func TestMemoryStore_ReplaceIgnoresFlag(t *testing.T) {
	store := NewMemoryStore[models.Skill]()
	ctx := context.Background()

	created, err := store.Insert(ctx, models.Skill{Name: "Go"})
	require.NoError(t, err)

	require.NoError(t, store.Replace(ctx, models.Skill{BaseEntity: models.BaseEntity{ID: created.ID}, Name: "Golang"}))

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Golang", got.Name)
	assert.True(t, got.IsActive)
}

func TestMemoryStore_Deactivate(t *testing.T) {
	store := NewMemoryStore[models.Skill]()
	ctx := context.Background()

	created, err := store.Insert(ctx, models.Skill{Name: "Go"})
	require.NoError(t, err)

	require.NoError(t, store.Deactivate(ctx, created.ID))
	assert.ErrorIs(t, store.Deactivate(ctx, created.ID), ErrNotFound)
	assert.ErrorIs(t, store.Deactivate(ctx, 99), ErrNotFound)

	raw, ok := store.Raw(created.ID)
	require.True(t, ok)
	assert.False(t, raw.IsActive)
	assert.Equal(t, "Go", raw.Name)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore[models.Skill]()

	_, err := store.Get(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotFound)
}
