package repository

import (
	"context"
	"errors"

	"github.com/aliiaycicek/My-Portfolio/internal/models"
)

// GenericRepository - единый CRUD для любого вида записей портфолио.
type GenericRepository[T any, PT models.Record[T]] struct {
	store Store[T]
}

// NewGenericRepository создаёт репозиторий поверх хранилища.
func NewGenericRepository[T any, PT models.Record[T]](store Store[T]) *GenericRepository[T, PT] {
	return &GenericRepository[T, PT]{store: store}
}

// GetAll возвращает все активные записи.
func (r *GenericRepository[T, PT]) GetAll(ctx context.Context) ([]T, error) {
	return r.store.Query(ctx, nil)
}

// Find возвращает активные записи, подходящие под предикат.
func (r *GenericRepository[T, PT]) Find(ctx context.Context, pred Predicate[T]) ([]T, error) {
	return r.store.Query(ctx, func(record T) bool {
		if !PT(&record).Active() {
			return false
		}
		return pred == nil || pred(record)
	})
}

// GetByID возвращает активную запись или ErrNotFound.
func (r *GenericRepository[T, PT]) GetByID(ctx context.Context, id int64) (T, error) {
	return r.store.Get(ctx, id)
}

// Add сохраняет новую запись. Возвращённая запись всегда активна.
func (r *GenericRepository[T, PT]) Add(ctx context.Context, entity T) (T, error) {
	PT(&entity).SetActive(true)
	return r.store.Insert(ctx, entity)
}

// Update перезаписывает существующую запись, флаг активности не меняется.
// Если активной записи с таким id нет, возвращает ErrNotFound и ничего не создаёт.
func (r *GenericRepository[T, PT]) Update(ctx context.Context, entity T) (T, error) {
	PT(&entity).SetActive(true)
	if err := r.store.Replace(ctx, entity); err != nil {
		return entity, err
	}
	return entity, nil
}

// Delete мягко удаляет запись. false означает, что удалять было нечего.
// Единственный путь, снимающий флаг активности.
func (r *GenericRepository[T, PT]) Delete(ctx context.Context, id int64) (bool, error) {
	err := r.store.Deactivate(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Exists проверяет наличие активной записи.
func (r *GenericRepository[T, PT]) Exists(ctx context.Context, id int64) (bool, error) {
	return r.store.Exists(ctx, id)
}
