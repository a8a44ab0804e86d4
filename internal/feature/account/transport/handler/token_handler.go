package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"maddr_backend/internal/api"
	"maddr_backend/internal/feature/account/transport/http/dto"
	"maddr_backend/internal/feature/account/usecase"
)

// TokenUsecase はトークン発行操作のユースケースを定義します。
type TokenUsecase interface {
	Issue(ctx context.Context, username, password string) (*usecase.Token, error)
	Refresh(ctx context.Context, username, password string) (*usecase.Token, error)
}

// TokenHandler はトークン発行のHTTPリクエストを処理します。
type TokenHandler struct {
	tokens TokenUsecase
}

// NewTokenHandler はTokenHandlerの新しいインスタンスを生成します。
func NewTokenHandler(tokens TokenUsecase) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

// Issue はアクセストークン発行エンドポイントを処理します。
// フォーム（OAuth2パスワードフロー）とJSONの両方を受け付けます。
// 認証失敗の理由は意図的に区別しません。
func (h *TokenHandler) Issue(c *gin.Context) {
	h.issue(c, h.tokens.Issue)
}

// Refresh は資格情報を再検証し、新しいアクセストークンを返します。
func (h *TokenHandler) Refresh(c *gin.Context) {
	h.issue(c, h.tokens.Refresh)
}

func (h *TokenHandler) issue(c *gin.Context, op func(context.Context, string, string) (*usecase.Token, error)) {
	var req dto.TokenReq
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: err.Error()})
		return
	}

	token, err := op(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("token issue failed", "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Detail: "Incorrect username or password."})
			return
		}
		slog.Error("token issue failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "Internal server error."})
		return
	}

	slog.Info("token issued", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{AccessToken: token.AccessToken, TokenType: token.TokenType})
}
