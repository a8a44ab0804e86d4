package usecase

import (
	"context"
	"errors"

	"maddr_backend/internal/feature/author/domain/entity"
	"maddr_backend/internal/platform/sanitize"
)

// AuthorRepository は著者エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはコンシューマー（usecase）が定義します。
type AuthorRepository interface {
	Create(ctx context.Context, author *entity.Author) error
	FindByID(ctx context.Context, id uint) (*entity.Author, error)
	// FindByName は正規化済みの名前で検索します。
	FindByName(ctx context.Context, name string) (*entity.Author, error)
	// Delete の結果は三値です: nil、ErrAuthorNotFound、ストレージ障害。
	Delete(ctx context.Context, id uint) error
}

// authorUsecase は著者のビジネスロジックを実装します。
type authorUsecase struct {
	authors AuthorRepository
}

// NewAuthorUsecase はauthorUsecaseの新しいインスタンスを生成します。
func NewAuthorUsecase(authors AuthorRepository) *authorUsecase {
	return &authorUsecase{authors: authors}
}

// Create は名前を正規化し、同名の著者が存在しなければ登録します。
// 一意性の比較は常に正規化後の値で行います。
func (u *authorUsecase) Create(ctx context.Context, name string) (*entity.Author, error) {
	cleaned := sanitize.Clean(name)

	if _, err := u.authors.FindByName(ctx, cleaned); err == nil {
		return nil, ErrNameTaken
	} else if !errors.Is(err, ErrAuthorNotFound) {
		return nil, err
	}

	author := &entity.Author{Name: cleaned}
	if err := u.authors.Create(ctx, author); err != nil {
		return nil, err
	}
	return author, nil
}

// Read はIDで著者を取得します。
func (u *authorUsecase) Read(ctx context.Context, id uint) (*entity.Author, error) {
	return u.authors.FindByID(ctx, id)
}

// Delete は著者を削除します。
// 著者の書籍はカスケードせず、author_idを保持したまま残ります（所有モデルの方針）。
func (u *authorUsecase) Delete(ctx context.Context, id uint) error {
	if _, err := u.authors.FindByID(ctx, id); err != nil {
		return err
	}
	return u.authors.Delete(ctx, id)
}
