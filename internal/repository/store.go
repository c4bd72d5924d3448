package repository

import "context"

// Predicate отбирает записи при поиске.
type Predicate[T any] func(T) bool

// Store - хранилище записей одного вида.
// Все методы видят только активные записи.
type Store[T any] interface {
	// Get возвращает активную запись или ErrNotFound.
	Get(ctx context.Context, id int64) (T, error)
	// Query возвращает активные записи по возрастанию id; nil предикат отбирает все.
	Query(ctx context.Context, pred Predicate[T]) ([]T, error)
	// Insert присваивает новый id и сохраняет запись.
	Insert(ctx context.Context, entity T) (T, error)
	// Replace перезаписывает поля активной записи, иначе ErrNotFound.
	// Флаг активности не меняется.
	Replace(ctx context.Context, entity T) error
	// Deactivate снимает флаг активности, иначе ErrNotFound.
	Deactivate(ctx context.Context, id int64) error
	// Exists сообщает, есть ли активная запись с таким id.
	Exists(ctx context.Context, id int64) (bool, error)
}

// filter оставляет элементы, подходящие под предикат.
func filter[T any](items []T, pred Predicate[T]) []T {
	if pred == nil {
		return items
	}
	result := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			result = append(result, item)
		}
	}
	return result
}

// Cloner - запись со списками, которую нужно копировать глубоко.
type Cloner[T any] interface {
	Clone() T
}

// cloneRecord копирует запись, если она умеет копировать свои списки.
func cloneRecord[T any](record T) T {
	if c, ok := any(record).(Cloner[T]); ok {
		return c.Clone()
	}
	return record
}
