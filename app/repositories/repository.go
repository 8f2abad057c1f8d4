// Package repositories persists models through an injected *gorm.DB.
package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("constraint violation")
)

// ConflictError is a write rejected by a unique or foreign-key constraint.
// It matches ErrConflict and the underlying driver error.
type ConflictError struct {
	Reason string
	Err    error
}

func (e *ConflictError) Error() string   { return e.Reason }
func (e *ConflictError) Unwrap() []error { return []error{ErrConflict, e.Err} }

// Repository is the CRUD surface over one table. Every write runs in gorm's
// implicit transaction and rolls back on failure.
type Repository[T any] struct {
	db *gorm.DB
}

func New[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// All returns every row ordered by primary key.
func (r *Repository[T]) All(ctx context.Context) ([]T, error) {
	items := make([]T, 0)
	err := r.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: clause.PrimaryKey}}).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list %T: %w", *new(T), err)
	}
	return items, nil
}

func (r *Repository[T]) Find(ctx context.Context, id uint) (T, error) {
	var item T
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return item, ErrNotFound
	}
	if err != nil {
		return item, fmt.Errorf("find %T %d: %w", item, id, err)
	}
	return item, nil
}

func (r *Repository[T]) Create(ctx context.Context, item *T) error {
	return classify(r.db.WithContext(ctx).Create(item).Error)
}

// Save writes every column of an existing row.
func (r *Repository[T]) Save(ctx context.Context, item *T) error {
	return classify(r.db.WithContext(ctx).Omit(clause.Associations).Save(item).Error)
}

func (r *Repository[T]) Delete(ctx context.Context, item *T) error {
	return classify(r.db.WithContext(ctx).Delete(item).Error)
}

func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey) || containsAny(err, "UNIQUE constraint failed", "duplicate key", "Duplicate entry"):
		return &ConflictError{Reason: "a record with the same unique value already exists", Err: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated) || containsAny(err, "FOREIGN KEY constraint failed", "foreign key constraint", "REFERENCE constraint"):
		return &ConflictError{Reason: "the change violates a reference between records", Err: err}
	default:
		return err
	}
}

func containsAny(err error, needles ...string) bool {
	msg := err.Error()
	for _, n := range needles {
		if strings.Contains(msg, n) {
			return true
		}
	}
	return false
}
