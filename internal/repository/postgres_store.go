package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/aliiaycicek/My-Portfolio/internal/models"
)

// PostgresStore хранит записи одного вида в таблице PostgreSQL.
// Удаление мягкое: строки никогда не удаляются, только is_active = FALSE.
type PostgresStore[T any, PT models.Record[T]] struct {
	db    *sqlx.DB
	table Table

	selectQuery string
	insertQuery string
	updateQuery     string
	deactivateQuery string
	existsQuery     string
}

// NewPostgresStore собирает запросы для таблицы один раз при создании.
func NewPostgresStore[T any, PT models.Record[T]](db *sqlx.DB, table Table) *PostgresStore[T, PT] {
	columns := strings.Join(table.Columns, ", ")

	sets := make([]string, 0, len(table.Columns))
	for _, column := range table.Columns {
		sets = append(sets, column+" = :"+column)
	}

	return &PostgresStore[T, PT]{
		db:    db,
		table: table,
		selectQuery: fmt.Sprintf(
			`SELECT id, is_active, %s FROM %s`,
			columns, table.Name,
		),
		insertQuery: fmt.Sprintf(
			`INSERT INTO %s (%s) VALUES (:%s) RETURNING id, is_active`,
			table.Name, columns, strings.Join(table.Columns, ", :"),
		),
		updateQuery: fmt.Sprintf(
			`UPDATE %s SET %s WHERE id = :id AND is_active = TRUE`,
			table.Name, strings.Join(sets, ", "),
		),
		deactivateQuery: fmt.Sprintf(
			`UPDATE %s SET is_active = FALSE WHERE id = $1 AND is_active = TRUE`,
			table.Name,
		),
		existsQuery: fmt.Sprintf(
			`SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1 AND is_active = TRUE)`,
			table.Name,
		),
	}
}

// Get возвращает активную запись по идентификатору.
func (s *PostgresStore[T, PT]) Get(ctx context.Context, id int64) (T, error) {
	var record T
	query := s.selectQuery + ` WHERE id = $1 AND is_active = TRUE`

	if err := s.db.GetContext(ctx, &record, query, id); err != nil {
		var zero T
		if errors.Is(err, sql.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, fmt.Errorf("%s store: get %w", s.table.Name, err)
	}

	return record, nil
}

// Query возвращает активные записи по возрастанию id.
// Предикат применяется к уже загруженным строкам.
func (s *PostgresStore[T, PT]) Query(ctx context.Context, pred Predicate[T]) ([]T, error) {
	var records []T
	query := s.selectQuery + ` WHERE is_active = TRUE ORDER BY id`

	if err := s.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("%s store: query %w", s.table.Name, err)
	}

	if records == nil {
		records = []T{}
	}
	return filter(records, pred), nil
}

// Insert сохраняет новую запись. id и is_active назначает база.
func (s *PostgresStore[T, PT]) Insert(ctx context.Context, entity T) (T, error) {
	query, args, err := s.db.BindNamed(s.insertQuery, &entity)
	if err != nil {
		return entity, fmt.Errorf("%s store: bind insert %w", s.table.Name, err)
	}

	var (
		id     int64
		active bool
	)
	if err := s.db.QueryRowxContext(ctx, query, args...).Scan(&id, &active); err != nil {
		return entity, fmt.Errorf("%s store: insert %w", s.table.Name, err)
	}

	PT(&entity).SetID(id)
	PT(&entity).SetActive(active)
	return entity, nil
}

// Replace перезаписывает активную запись. is_active запросом не меняется.
func (s *PostgresStore[T, PT]) Replace(ctx context.Context, entity T) error {
	result, err := s.db.NamedExecContext(ctx, s.updateQuery, &entity)
	if err != nil {
		return fmt.Errorf("%s store: update %w", s.table.Name, err)
	}
	return s.checkAffected(result, "update")
}

// Deactivate ставит is_active = FALSE у активной строки.
func (s *PostgresStore[T, PT]) Deactivate(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, s.deactivateQuery, id)
	if err != nil {
		return fmt.Errorf("%s store: deactivate %w", s.table.Name, err)
	}
	return s.checkAffected(result, "deactivate")
}

// checkAffected превращает ноль затронутых строк в ErrNotFound.
func (s *PostgresStore[T, PT]) checkAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s store: %s rows affected %w", s.table.Name, op, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Exists проверяет наличие активной записи.
func (s *PostgresStore[T, PT]) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := s.db.GetContext(ctx, &exists, s.existsQuery, id); err != nil {
		return false, fmt.Errorf("%s store: exists %w", s.table.Name, err)
	}
	return exists, nil
}
