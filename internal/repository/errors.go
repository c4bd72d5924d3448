package repository

import "errors"

// ErrNotFound возвращается, когда активной записи с таким идентификатором нет.
var ErrNotFound = errors.New("запись не найдена")
