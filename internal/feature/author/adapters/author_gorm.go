// Package adapters はauthorフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"maddr_backend/internal/feature/author/domain/entity"
	"maddr_backend/internal/feature/author/usecase"
	"maddr_backend/internal/platform/crud"
)

const (
	fieldID   crud.Field = "id"
	fieldName crud.Field = "name"
)

// authorGorm はAuthorRepositoryインターフェースのGORM実装です。
type authorGorm struct {
	repo *crud.Repository[entity.Author]
}

var _ usecase.AuthorRepository = (*authorGorm)(nil)

// NewAuthorGorm は指定されたgorm.DB接続でauthorGormの新しいインスタンスを生成します。
func NewAuthorGorm(db *gorm.DB) *authorGorm {
	return &authorGorm{
		repo: crud.NewRepository[entity.Author](db, map[crud.Field]string{
			fieldID:   "id",
			fieldName: "name",
		}),
	}
}

func (r *authorGorm) Create(ctx context.Context, author *entity.Author) error {
	if err := r.repo.Create(ctx, author); err != nil {
		if errors.Is(err, crud.ErrDuplicate) {
			return usecase.ErrNameTaken
		}
		return err
	}
	return nil
}

func (r *authorGorm) FindByID(ctx context.Context, id uint) (*entity.Author, error) {
	return r.findBy(ctx, fieldID, id)
}

func (r *authorGorm) FindByName(ctx context.Context, name string) (*entity.Author, error) {
	return r.findBy(ctx, fieldName, name)
}

func (r *authorGorm) findBy(ctx context.Context, field crud.Field, value any) (*entity.Author, error) {
	author, err := r.repo.FindBy(ctx, field, value)
	if err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return nil, usecase.ErrAuthorNotFound
		}
		return nil, err
	}
	return author, nil
}

func (r *authorGorm) Delete(ctx context.Context, id uint) error {
	if err := r.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return usecase.ErrAuthorNotFound
		}
		return fmt.Errorf("delete author: %w", err)
	}
	return nil
}
