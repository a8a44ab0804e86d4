// Package usecase implements the business logic for the book feature.
package usecase

import (
	"context"
	"errors"

	"maddr_backend/internal/feature/book/domain/entity"
	"maddr_backend/internal/platform/sanitize"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// ListFilter は書籍一覧の絞り込み条件です。ゼロ値のフィールドは無視されます。
type ListFilter struct {
	// TitleContains は正規化済みタイトルに対する部分一致です。
	TitleContains string
	// PublishYear は出版年の完全一致です。0は未指定を意味します。
	PublishYear int
}

// BookRepository は書籍エンティティの永続化層を抽象化します。
type BookRepository interface {
	Create(ctx context.Context, book *entity.Book) error
	FindByID(ctx context.Context, id uint) (*entity.Book, error)
	// FindByTitle は正規化済みのタイトルで検索します。
	FindByTitle(ctx context.Context, title string) (*entity.Book, error)
	List(ctx context.Context, filter ListFilter, skip, limit int) ([]entity.Book, error)
}

// AuthorChecker は参照先の著者が存在するかを確認します。
type AuthorChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// bookUsecase は書籍のビジネスロジックを実装します。
type bookUsecase struct {
	books   BookRepository
	authors AuthorChecker
}

// NewBookUsecase はbookUsecaseの新しいインスタンスを生成します。
func NewBookUsecase(books BookRepository, authors AuthorChecker) *bookUsecase {
	return &bookUsecase{books: books, authors: authors}
}

// Create はタイトルを正規化し、参照先の著者が存在し、
// 同タイトルの書籍が存在しなければ登録します。
func (u *bookUsecase) Create(ctx context.Context, title string, authorID uint, publishYear int) (*entity.Book, error) {
	cleaned := sanitize.Clean(title)

	ok, err := u.authors.Exists(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAuthorNotFound
	}

	if _, err := u.books.FindByTitle(ctx, cleaned); err == nil {
		return nil, ErrTitleTaken
	} else if !errors.Is(err, ErrBookNotFound) {
		return nil, err
	}

	book := &entity.Book{Title: cleaned, AuthorID: authorID, PublishYear: publishYear}
	if err := u.books.Create(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// Read はIDで書籍を取得します。
func (u *bookUsecase) Read(ctx context.Context, id uint) (*entity.Book, error) {
	return u.books.FindByID(ctx, id)
}

// List は条件に一致する書籍を返します。一致が0件の場合はErrNoBooksFoundを
// 返します（空リストは返しません）。limitは未指定なら20、上限は100です。
func (u *bookUsecase) List(ctx context.Context, filter ListFilter, skip, limit int) ([]entity.Book, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	filter.TitleContains = sanitize.Clean(filter.TitleContains)

	books, err := u.books.List(ctx, filter, skip, limit)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, ErrNoBooksFound
	}
	return books, nil
}
