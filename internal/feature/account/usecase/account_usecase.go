package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"maddr_backend/internal/feature/account/domain/entity"
)

// AccountRepository はアカウントエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type AccountRepository interface {
	// Create は新しいアカウントをストレージに永続化します。
	Create(ctx context.Context, account *entity.Account) error

	// FindByID は指定されたIDに一致するアカウントを取得します。
	// 存在しない場合はErrAccountNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Account, error)

	// FindByUsername は指定されたユーザー名に一致するアカウントを取得します。
	// 存在しない場合はErrAccountNotFoundを返します。
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// FindByEmail は指定されたメールアドレスに一致するアカウントを取得します。
	// 存在しない場合はErrAccountNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Update はIDでアカウントを読み込み、applyで全フィールドを上書きして保存します。
	Update(ctx context.Context, id uint, apply func(*entity.Account)) (*entity.Account, error)

	// Delete はアカウントを物理削除します。結果は三値です:
	// nil（削除済み）、ErrAccountNotFound（存在しない）、その他（ストレージ障害、ロールバック済み）。
	Delete(ctx context.Context, id uint) error
}

// accountUsecase はアカウントのビジネスロジックを実装します。
type accountUsecase struct {
	accounts AccountRepository
}

// NewAccountUsecase はaccountUsecaseの新しいインスタンスを生成します。
func NewAccountUsecase(accounts AccountRepository) *accountUsecase {
	return &accountUsecase{accounts: accounts}
}

// Create は新規アカウントを登録します。
// ユーザー名の一意性を先に、メールアドレスを後に検査します。
// 両方衝突した場合はユーザー名のコンフリクトが返ります（順序は仕様）。
func (u *accountUsecase) Create(ctx context.Context, username, email, password string) (*entity.Account, error) {
	if _, err := u.accounts.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, ErrAccountNotFound) {
		return nil, err
	}

	if _, err := u.accounts.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrAccountNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &entity.Account{
		Username: username,
		Email:    email,
		Password: string(hashed),
	}
	if err := u.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Read はIDでアカウントを取得します。
func (u *accountUsecase) Read(ctx context.Context, id uint) (*entity.Account, error) {
	return u.accounts.FindByID(ctx, id)
}

// Update はアカウントの全フィールドを上書きします。
// 対象が存在しない場合はErrAccountNotFound、操作者が所有者でない場合はErrNotOwnerを返します。
// パスワードは変更有無にかかわらず毎回再ハッシュされます。
func (u *accountUsecase) Update(ctx context.Context, id, actorID uint, username, email, password string) (*entity.Account, error) {
	if _, err := u.accounts.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if actorID != id {
		return nil, ErrNotOwner
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return u.accounts.Update(ctx, id, func(a *entity.Account) {
		a.Username = username
		a.Email = email
		a.Password = string(hashed)
	})
}

// Delete はアカウントを削除します。所有者のみが削除できます。
func (u *accountUsecase) Delete(ctx context.Context, id, actorID uint) error {
	if _, err := u.accounts.FindByID(ctx, id); err != nil {
		return err
	}
	if actorID != id {
		return ErrNotOwner
	}
	return u.accounts.Delete(ctx, id)
}
