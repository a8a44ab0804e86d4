// Package crud provides a generic, typed repository over a single entity
// kind. Each instantiation is bound to one concrete entity type and an
// explicit allow-list of searchable fields, so lookups never fall back to
// arbitrary reflective column access.
package crud

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no row matches the lookup.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when an insert violates a schema-level
	// uniqueness constraint. The constraint is what closes the
	// check-then-insert race; this error surfaces the losing side.
	ErrDuplicate = errors.New("record already exists")

	// ErrFieldNotSearchable is returned when a lookup names a field that is
	// not in the repository's allow-list.
	ErrFieldNotSearchable = errors.New("field is not searchable")
)

// Field identifies a searchable column of an entity. Each adapter declares
// its own Field constants and maps them to column names at construction.
type Field string

// Repository implements create/read/update/delete for one entity kind T.
// All write operations run inside a transaction scoped to the call.
type Repository[T any] struct {
	db      *gorm.DB
	columns map[Field]string
}

// NewRepository creates a repository for T with the given searchable-field
// allow-list (field -> column name).
func NewRepository[T any](db *gorm.DB, searchable map[Field]string) *Repository[T] {
	columns := make(map[Field]string, len(searchable))
	for f, col := range searchable {
		columns[f] = col
	}
	return &Repository[T]{db: db, columns: columns}
}

// Create inserts the record. The surrogate id and created_at/updated_at
// timestamps are assigned by the storage layer on write. A uniqueness
// violation is reported as ErrDuplicate; other storage errors propagate.
func (r *Repository[T]) Create(ctx context.Context, record *T) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(record).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("create failed: %w", err)
	}
	return nil
}

// FindBy returns the single row whose field equals value, or ErrNotFound
// when no row matches. Fields outside the allow-list are rejected with
// ErrFieldNotSearchable.
func (r *Repository[T]) FindBy(ctx context.Context, field Field, value any) (*T, error) {
	column, ok := r.columns[field]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFieldNotSearchable, field)
	}

	var record T
	if err := r.db.WithContext(ctx).Where(column+" = ?", value).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find by %s failed: %w", column, err)
	}
	return &record, nil
}

// Update loads the row by id, lets apply overwrite its fields, and saves the
// whole record, re-stamping updated_at. ErrNotFound is returned when no such
// row exists so callers can tell it apart from an update that changed
// nothing.
func (r *Repository[T]) Update(ctx context.Context, id uint, apply func(*T)) (*T, error) {
	var record T
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&record, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		apply(&record)
		return tx.Save(&record).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("update failed: %w", err)
	}
	return &record, nil
}

// Delete hard-deletes the row by id inside a transaction. The outcome is
// tri-state: nil when the row was deleted, ErrNotFound when it never
// existed, and a wrapped storage error when the delete itself failed and
// was rolled back.
func (r *Repository[T]) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record T
		if err := tx.First(&record, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return tx.Delete(&record).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete failed: %w", err)
	}
	return nil
}
