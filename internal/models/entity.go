package models

// Record описывает ограничение для обобщённого хранилища: указатель на сущность,
// у которой есть идентификатор и флаг активности.
type Record[T any] interface {
	*T
	GetID() int64
	SetID(id int64)
	Active() bool
	SetActive(active bool)
}

// BaseEntity содержит общие поля всех сущностей портфолио.
// Запись с IsActive == false считается удалённой, но физически остаётся в таблице.
type BaseEntity struct {
	ID       int64 `db:"id"`
	IsActive bool  `db:"is_active"`
}

// GetID возвращает идентификатор записи.
func (e *BaseEntity) GetID() int64 {
	return e.ID
}

// SetID задаёт идентификатор записи.
func (e *BaseEntity) SetID(id int64) {
	e.ID = id
}

// Active сообщает, видна ли запись при чтении.
func (e *BaseEntity) Active() bool {
	return e.IsActive
}

// SetActive меняет флаг активности.
func (e *BaseEntity) SetActive(active bool) {
	e.IsActive = active
}
