// Package adapters はbookフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"maddr_backend/internal/feature/book/domain/entity"
	"maddr_backend/internal/feature/book/usecase"
	"maddr_backend/internal/platform/crud"
)

const (
	fieldID    crud.Field = "id"
	fieldTitle crud.Field = "title"
)

// bookGorm はBookRepositoryインターフェースのGORM実装です。
// 一覧検索はジェネリックリポジトリの範囲外なのでgorm.DBを直接使います。
type bookGorm struct {
	db   *gorm.DB
	repo *crud.Repository[entity.Book]
}

var _ usecase.BookRepository = (*bookGorm)(nil)

// NewBookGorm は指定されたgorm.DB接続でbookGormの新しいインスタンスを生成します。
func NewBookGorm(db *gorm.DB) *bookGorm {
	return &bookGorm{
		db: db,
		repo: crud.NewRepository[entity.Book](db, map[crud.Field]string{
			fieldID:    "id",
			fieldTitle: "title",
		}),
	}
}

func (r *bookGorm) Create(ctx context.Context, book *entity.Book) error {
	if err := r.repo.Create(ctx, book); err != nil {
		if errors.Is(err, crud.ErrDuplicate) {
			return usecase.ErrTitleTaken
		}
		return err
	}
	return nil
}

func (r *bookGorm) FindByID(ctx context.Context, id uint) (*entity.Book, error) {
	return r.findBy(ctx, fieldID, id)
}

func (r *bookGorm) FindByTitle(ctx context.Context, title string) (*entity.Book, error) {
	return r.findBy(ctx, fieldTitle, title)
}

func (r *bookGorm) findBy(ctx context.Context, field crud.Field, value any) (*entity.Book, error) {
	book, err := r.repo.FindBy(ctx, field, value)
	if err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return nil, usecase.ErrBookNotFound
		}
		return nil, err
	}
	return book, nil
}

// List は条件に一致する書籍をID昇順で返します。
// タイトルは正規化済みで格納されているため、LIKE比較で大文字小文字を
// 区別しない部分一致になります。
func (r *bookGorm) List(ctx context.Context, filter usecase.ListFilter, skip, limit int) ([]entity.Book, error) {
	query := r.db.WithContext(ctx).Model(&entity.Book{})
	if filter.TitleContains != "" {
		query = query.Where("title LIKE ?", "%"+filter.TitleContains+"%")
	}
	if filter.PublishYear != 0 {
		query = query.Where("publish_year = ?", filter.PublishYear)
	}

	var books []entity.Book
	if err := query.Order("id ASC").Offset(skip).Limit(limit).Find(&books).Error; err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}
