// Package adapters はnovelistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"maddr_backend/internal/feature/novelist/domain/entity"
	"maddr_backend/internal/feature/novelist/usecase"
	"maddr_backend/internal/platform/crud"
)

const (
	fieldID   crud.Field = "id"
	fieldName crud.Field = "name"
)

// novelistGorm はNovelistRepositoryインターフェースのGORM実装です。
type novelistGorm struct {
	repo *crud.Repository[entity.Novelist]
}

var _ usecase.NovelistRepository = (*novelistGorm)(nil)

// NewNovelistGorm は指定されたgorm.DB接続でnovelistGormの新しいインスタンスを生成します。
func NewNovelistGorm(db *gorm.DB) *novelistGorm {
	return &novelistGorm{
		repo: crud.NewRepository[entity.Novelist](db, map[crud.Field]string{
			fieldID:   "id",
			fieldName: "name",
		}),
	}
}

func (r *novelistGorm) Create(ctx context.Context, novelist *entity.Novelist) error {
	if err := r.repo.Create(ctx, novelist); err != nil {
		if errors.Is(err, crud.ErrDuplicate) {
			return usecase.ErrNameTaken
		}
		return err
	}
	return nil
}

func (r *novelistGorm) FindByID(ctx context.Context, id uint) (*entity.Novelist, error) {
	return r.findBy(ctx, fieldID, id)
}

func (r *novelistGorm) FindByName(ctx context.Context, name string) (*entity.Novelist, error) {
	return r.findBy(ctx, fieldName, name)
}

func (r *novelistGorm) findBy(ctx context.Context, field crud.Field, value any) (*entity.Novelist, error) {
	novelist, err := r.repo.FindBy(ctx, field, value)
	if err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return nil, usecase.ErrNovelistNotFound
		}
		return nil, err
	}
	return novelist, nil
}
