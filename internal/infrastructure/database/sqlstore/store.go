// Package sqlstore implements the Storage port over database/sql. Dialect
// specifics (placeholders, conflict detection) are supplied by the driver
// packages next to it.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	domainerrors "github.com/whiteelite/catalog/internal/domain/errors"
	"github.com/whiteelite/catalog/internal/logger"
	shared "github.com/whiteelite/catalog/pkg/shared/domain/entities"
)

// Dialect captures what differs between SQL backends.
type Dialect interface {
	// Placeholder renders the n-th (1-based) bind parameter.
	Placeholder(n int) string
	// IsConflict reports whether err is a uniqueness violation.
	IsConflict(err error) bool
}

// Scanner is satisfied by *sql.Row.
type Scanner interface {
	Scan(dest ...any) error
}

// Table maps an entity kind onto a table keyed by a TEXT id column.
type Table[T shared.Identifiable] struct {
	Entity  string
	Name    string
	Columns []string
	Values  func(item T) []any
	// Decode reads Columns from row. It returns ErrMalformedRecord when the
	// row cannot be turned into a coherent entity.
	Decode func(id shared.ID, row Scanner) (T, error)
}

type queries struct {
	insert string
	delete string
	update string
	get    string
}

// Store persists one entity kind. Every write runs in its own transaction.
type Store[T shared.Identifiable] struct {
	db      *sql.DB
	dialect Dialect
	table   Table[T]
	q       queries
	log     *logger.Logger
}

func New[T shared.Identifiable](db *sql.DB, dialect Dialect, table Table[T], log *logger.Logger) *Store[T] {
	return &Store[T]{
		db:      db,
		dialect: dialect,
		table:   table,
		q:       buildQueries(dialect, table.Name, table.Columns),
		log:     log.WithFields(map[string]any{"table": table.Name}),
	}
}

func buildQueries(d Dialect, table string, columns []string) queries {
	all := append([]string{"id"}, columns...)

	values := make([]string, len(all))
	for i := range all {
		values[i] = d.Placeholder(i + 1)
	}

	sets := make([]string, len(columns))
	for i, column := range columns {
		sets[i] = fmt.Sprintf("%s = %s", column, d.Placeholder(i+1))
	}

	return queries{
		insert: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(all, ", "), strings.Join(values, ", ")),
		delete: fmt.Sprintf("DELETE FROM %s WHERE id = %s", table, d.Placeholder(1)),
		update: fmt.Sprintf("UPDATE %s SET %s WHERE id = %s", table, strings.Join(sets, ", "), d.Placeholder(len(columns)+1)),
		get:    fmt.Sprintf("SELECT %s FROM %s WHERE id = %s", strings.Join(columns, ", "), table, d.Placeholder(1)),
	}
}

// Add inserts item. A duplicate id yields ErrConflict.
func (s *Store[T]) Add(ctx context.Context, item T) error {
	args := append([]any{item.Identity()}, s.table.Values(item)...)

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, s.q.insert, args...)
		return err
	})
	if err != nil {
		return s.classify("add", err)
	}
	return nil
}

// Remove deletes the row for id. A missing row is not an error.
func (s *Store[T]) Remove(ctx context.Context, id shared.ID) error {
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, s.q.delete, id.Identity())
		return err
	})
	if err != nil {
		return s.classify("remove", err)
	}
	return nil
}

// Get returns nil when no row matches or the row is malformed.
func (s *Store[T]) Get(ctx context.Context, id shared.ID) (*T, error) {
	row := s.db.QueryRowContext(ctx, s.q.get, id.Identity())

	item, err := s.table.Decode(id, row)
	switch {
	case err == nil:
		return &item, nil
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case errors.Is(err, domainerrors.ErrMalformedRecord):
		s.log.WithFields(map[string]any{"id": id.Identity(), "error": err.Error()}).Warn("skipping malformed record")
		return nil, nil
	default:
		return nil, domainerrors.Unavailable("get", s.table.Entity, err)
	}
}

// Update rewrites every non-id column. ErrNoRowsAffected is returned when
// id does not exist.
func (s *Store[T]) Update(ctx context.Context, item T) error {
	args := append(s.table.Values(item), item.Identity())

	var affected int64
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, s.q.update, args...)
		if err != nil {
			return err
		}
		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return s.classify("update", err)
	}
	if affected == 0 {
		return domainerrors.ErrNoRowsAffected
	}
	return nil
}

func (s *Store[T]) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.log.Error(rbErr, "rollback failed")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *Store[T]) classify(op string, err error) error {
	if s.dialect.IsConflict(err) {
		return domainerrors.Conflict(op, s.table.Entity, err)
	}
	return domainerrors.Unavailable(op, s.table.Entity, err)
}
