package usecase

import (
	"context"
	"errors"

	"maddr_backend/internal/feature/account/domain/entity"
)

// TokenVerifier はベアラートークンの検証を抽象化します。
type TokenVerifier interface {
	// ParseSubject はトークンを検証し、主体のユーザー名を返します。
	ParseSubject(token string) (string, error)
}

// authenticator はベアラートークンを所有アカウントに解決します。
// 保護された操作の前段ゲートとして使用されます。
type authenticator struct {
	accounts AccountRepository
	verifier TokenVerifier
}

// NewAuthenticator はauthenticatorの新しいインスタンスを生成します。
func NewAuthenticator(accounts AccountRepository, verifier TokenVerifier) *authenticator {
	return &authenticator{accounts: accounts, verifier: verifier}
}

// Resolve はトークンを検証し、subクレームのユーザー名でアカウントを検索します。
// トークンが無効・期限切れ、またはアカウントが存在しない場合はErrUnauthenticatedを返します。
func (a *authenticator) Resolve(ctx context.Context, token string) (*entity.Account, error) {
	subject, err := a.verifier.ParseSubject(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	account, err := a.accounts.FindByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return account, nil
}
