package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"maddr_backend/internal/feature/account/domain/entity"
)

// TokenIssuer はアクセストークンの発行を抽象化します。
type TokenIssuer interface {
	// GenerateToken は指定されたユーザー名を主体とする署名済みトークンを生成します。
	GenerateToken(username string) (string, error)
}

// Token は発行済みアクセストークンです。
type Token struct {
	AccessToken string
	TokenType   string
}

// tokenUsecase は資格情報の検証とトークン発行を実装します。
type tokenUsecase struct {
	accounts AccountRepository
	issuer   TokenIssuer
}

// NewTokenUsecase はtokenUsecaseの新しいインスタンスを生成します。
func NewTokenUsecase(accounts AccountRepository, issuer TokenIssuer) *tokenUsecase {
	return &tokenUsecase{accounts: accounts, issuer: issuer}
}

// Issue はユーザー名とパスワードを検証し、アクセストークンを発行します。
// 「ユーザーが存在しない」と「パスワードが違う」は同一のErrInvalidCredentialsに
// 畳み込み、ユーザー名の列挙を防ぎます。
func (u *tokenUsecase) Issue(ctx context.Context, username, password string) (*Token, error) {
	account, err := u.validateCredentials(ctx, username, password)
	if err != nil {
		return nil, err
	}

	access, err := u.issuer.GenerateToken(account.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &Token{AccessToken: access, TokenType: "bearer"}, nil
}

// Refresh は資格情報を再検証し、新しいアクセストークンを発行します。
func (u *tokenUsecase) Refresh(ctx context.Context, username, password string) (*Token, error) {
	return u.Issue(ctx, username, password)
}

// validateCredentials はアカウントを検索しパスワードを照合します。
// タイミング攻撃を緩和するため、ユーザー未検出でもbcrypt比較を必ず実行します。
func (u *tokenUsecase) validateCredentials(ctx context.Context, username, password string) (*entity.Account, error) {
	account, findErr := u.accounts.FindByUsername(ctx, username)

	// ユーザーが存在しない場合のダミーハッシュ
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if findErr == nil {
		passwordHash = account.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if findErr != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}
