package repository

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

const allRecordsKey = "all"

// CachedStore кэширует чтения поверх другого хранилища.
// Любая запись сбрасывает кэш целиком. Корректен только для одного экземпляра сервиса.
// Записи, реализующие Cloner, отдаются копиями, поэтому изменение списков у вызывающего не портит кэш.
type CachedStore[T any] struct {
	inner Store[T]
	cache *cache.Cache
	// mu не даёт чтению положить в кэш данные, устаревшие из-за параллельной записи.
	mu sync.RWMutex
}

// NewCachedStore оборачивает хранилище кэшем с заданным TTL.
func NewCachedStore[T any](inner Store[T], ttl time.Duration) *CachedStore[T] {
	return &CachedStore[T]{
		inner: inner,
		cache: cache.New(ttl, 2*ttl),
	}
}

// Get читает запись из кэша или из хранилища.
func (s *CachedStore[T]) Get(ctx context.Context, id int64) (T, error) {
	key := recordKey(id)
	if cached, found := s.cache.Get(key); found {
		return cloneRecord(cached.(T)), nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	record, err := s.inner.Get(ctx, id)
	if err != nil {
		return record, err
	}
	s.cache.Set(key, cloneRecord(record), cache.DefaultExpiration)
	return cloneRecord(record), nil
}

// Query фильтрует закэшированный полный список.
func (s *CachedStore[T]) Query(ctx context.Context, pred Predicate[T]) ([]T, error) {
	all, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	// копия, чтобы вызывающий не испортил кэш
	result := make([]T, 0, len(all))
	for _, record := range all {
		if pred == nil || pred(record) {
			result = append(result, cloneRecord(record))
		}
	}
	return result, nil
}

// Insert пишет в хранилище и сбрасывает кэш.
func (s *CachedStore[T]) Insert(ctx context.Context, entity T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created, err := s.inner.Insert(ctx, entity)
	if err != nil {
		return created, err
	}
	s.cache.Flush()
	return created, nil
}

// Replace пишет в хранилище и сбрасывает кэш.
func (s *CachedStore[T]) Replace(ctx context.Context, entity T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.inner.Replace(ctx, entity); err != nil {
		return err
	}
	s.cache.Flush()
	return nil
}

// Deactivate пишет в хранилище и сбрасывает кэш.
func (s *CachedStore[T]) Deactivate(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.inner.Deactivate(ctx, id); err != nil {
		return err
	}
	s.cache.Flush()
	return nil
}

// Exists отвечает по кэшу записи, если она там есть.
func (s *CachedStore[T]) Exists(ctx context.Context, id int64) (bool, error) {
	if _, found := s.cache.Get(recordKey(id)); found {
		return true, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Exists(ctx, id)
}

func (s *CachedStore[T]) all(ctx context.Context) ([]T, error) {
	if cached, found := s.cache.Get(allRecordsKey); found {
		return cached.([]T), nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	records, err := s.inner.Query(ctx, nil)
	if err != nil {
		return nil, err
	}
	cached := make([]T, 0, len(records))
	for _, record := range records {
		cached = append(cached, cloneRecord(record))
	}
	s.cache.Set(allRecordsKey, cached, cache.DefaultExpiration)
	return records, nil
}

func recordKey(id int64) string {
	return "id:" + strconv.FormatInt(id, 10)
}
