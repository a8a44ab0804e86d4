package adapters

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	authorentity "maddr_backend/internal/feature/author/domain/entity"
	"maddr_backend/internal/feature/book/usecase"
)

// authorCheckerGorm はAuthorCheckerインターフェースのGORM実装です。
type authorCheckerGorm struct {
	db *gorm.DB
}

var _ usecase.AuthorChecker = (*authorCheckerGorm)(nil)

// NewAuthorCheckerGorm は指定されたgorm.DB接続でauthorCheckerGormの
// 新しいインスタンスを生成します。
func NewAuthorCheckerGorm(db *gorm.DB) *authorCheckerGorm {
	return &authorCheckerGorm{db: db}
}

func (r *authorCheckerGorm) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&authorentity.Author{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check author existence: %w", err)
	}
	return count > 0, nil
}
