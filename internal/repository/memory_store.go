package repository

import (
	"context"
	"sync"

	"github.com/aliiaycicek/My-Portfolio/internal/models"
)

// MemoryStore хранит записи в памяти процесса. Списки копируются на входе и выходе.
// Используется при STORAGE_DRIVER=memory и в тестах.
type MemoryStore[T any, PT models.Record[T]] struct {
	mu      sync.RWMutex
	nextID  int64
	order   []int64
	records map[int64]T
}

// NewMemoryStore создаёт пустое хранилище.
func NewMemoryStore[T any, PT models.Record[T]]() *MemoryStore[T, PT] {
	return &MemoryStore[T, PT]{records: make(map[int64]T)}
}

// Get возвращает активную запись.
func (s *MemoryStore[T, PT]) Get(_ context.Context, id int64) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok || !PT(&record).Active() {
		var zero T
		return zero, ErrNotFound
	}
	return cloneRecord(record), nil
}

// Query возвращает активные записи в порядке вставки.
func (s *MemoryStore[T, PT]) Query(_ context.Context, pred Predicate[T]) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]T, 0, len(s.order))
	for _, id := range s.order {
		record := s.records[id]
		if !PT(&record).Active() {
			continue
		}
		if pred != nil && !pred(record) {
			continue
		}
		result = append(result, cloneRecord(record))
	}
	return result, nil
}

// Insert присваивает следующий id. Идентификаторы не переиспользуются.
func (s *MemoryStore[T, PT]) Insert(_ context.Context, entity T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	PT(&entity).SetID(s.nextID)
	PT(&entity).SetActive(true)

	s.records[s.nextID] = cloneRecord(entity)
	s.order = append(s.order, s.nextID)
	return entity, nil
}

// Replace перезаписывает активную запись, запись остаётся активной.
func (s *MemoryStore[T, PT]) Replace(_ context.Context, entity T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := PT(&entity).GetID()
	current, ok := s.records[id]
	if !ok || !PT(&current).Active() {
		return ErrNotFound
	}

	PT(&entity).SetActive(true)
	s.records[id] = cloneRecord(entity)
	return nil
}

// Deactivate мягко удаляет активную запись.
func (s *MemoryStore[T, PT]) Deactivate(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[id]
	if !ok || !PT(&record).Active() {
		return ErrNotFound
	}

	PT(&record).SetActive(false)
	s.records[id] = record
	return nil
}

// Exists проверяет наличие активной записи.
func (s *MemoryStore[T, PT]) Exists(_ context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	return ok && PT(&record).Active(), nil
}

// Raw возвращает запись независимо от флага активности.
func (s *MemoryStore[T, PT]) Raw(id int64) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	return record, ok
}
