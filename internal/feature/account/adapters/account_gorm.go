// Package adapters はaccountフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"maddr_backend/internal/feature/account/domain/entity"
	"maddr_backend/internal/feature/account/usecase"
	"maddr_backend/internal/platform/crud"
)

// 検索可能フィールドの列挙。リポジトリはこの許可リスト以外の列を参照できません。
const (
	fieldID       crud.Field = "id"
	fieldUsername crud.Field = "username"
	fieldEmail    crud.Field = "email"
)

// accountGorm はAccountRepositoryインターフェースのGORM実装です。
// 汎用リポジトリをAccountエンティティにバインドします。
type accountGorm struct {
	repo *crud.Repository[entity.Account]
}

// accountGormがAccountRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.AccountRepository = (*accountGorm)(nil)

// NewAccountGorm は指定されたgorm.DB接続でaccountGormの新しいインスタンスを生成します。
func NewAccountGorm(db *gorm.DB) *accountGorm {
	return &accountGorm{
		repo: crud.NewRepository[entity.Account](db, map[crud.Field]string{
			fieldID:       "id",
			fieldUsername: "username",
			fieldEmail:    "email",
		}),
	}
}

// Create はアカウントをデータベースに追加します。
func (r *accountGorm) Create(ctx context.Context, account *entity.Account) error {
	return r.repo.Create(ctx, account)
}

// FindByID はIDでアカウントを取得します。
func (r *accountGorm) FindByID(ctx context.Context, id uint) (*entity.Account, error) {
	return r.findBy(ctx, fieldID, id)
}

// FindByUsername はユーザー名でアカウントを取得します。
func (r *accountGorm) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	return r.findBy(ctx, fieldUsername, username)
}

// FindByEmail はメールアドレスでアカウントを取得します。
func (r *accountGorm) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return r.findBy(ctx, fieldEmail, email)
}

func (r *accountGorm) findBy(ctx context.Context, field crud.Field, value any) (*entity.Account, error) {
	account, err := r.repo.FindBy(ctx, field, value)
	if err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return nil, usecase.ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

// Update はアカウントを読み込み、applyで上書きして保存します。
func (r *accountGorm) Update(ctx context.Context, id uint, apply func(*entity.Account)) (*entity.Account, error) {
	account, err := r.repo.Update(ctx, id, apply)
	if err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return nil, usecase.ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

// Delete はアカウントを物理削除します。
// 存在しない場合はErrAccountNotFound、ストレージ障害はラップして伝播します。
func (r *accountGorm) Delete(ctx context.Context, id uint) error {
	if err := r.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return usecase.ErrAccountNotFound
		}
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}
