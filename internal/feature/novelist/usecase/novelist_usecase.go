// Package usecase implements the business logic for the novelist feature.
package usecase

import (
	"context"
	"errors"

	"maddr_backend/internal/feature/novelist/domain/entity"
	"maddr_backend/internal/platform/sanitize"
)

var (
	// ErrNovelistNotFound is returned when no novelist matches the lookup.
	ErrNovelistNotFound = errors.New("novelist not found")

	// ErrNameTaken is returned when a novelist with the same sanitized name
	// already exists.
	ErrNameTaken = errors.New("novelist name already exists")
)

// NovelistRepository は小説家エンティティの永続化層を抽象化します。
type NovelistRepository interface {
	Create(ctx context.Context, novelist *entity.Novelist) error
	FindByID(ctx context.Context, id uint) (*entity.Novelist, error)
	FindByName(ctx context.Context, name string) (*entity.Novelist, error)
}

// novelistUsecase は小説家のビジネスロジックを実装します。
type novelistUsecase struct {
	novelists NovelistRepository
}

// NewNovelistUsecase はnovelistUsecaseの新しいインスタンスを生成します。
func NewNovelistUsecase(novelists NovelistRepository) *novelistUsecase {
	return &novelistUsecase{novelists: novelists}
}

// Create は名前を正規化し、同名の小説家が存在しなければ登録します。
func (u *novelistUsecase) Create(ctx context.Context, name string) (*entity.Novelist, error) {
	cleaned := sanitize.Clean(name)

	if _, err := u.novelists.FindByName(ctx, cleaned); err == nil {
		return nil, ErrNameTaken
	} else if !errors.Is(err, ErrNovelistNotFound) {
		return nil, err
	}

	novelist := &entity.Novelist{Name: cleaned}
	if err := u.novelists.Create(ctx, novelist); err != nil {
		return nil, err
	}
	return novelist, nil
}

// Read はIDで小説家を取得します。
func (u *novelistUsecase) Read(ctx context.Context, id uint) (*entity.Novelist, error) {
	return u.novelists.FindByID(ctx, id)
}
