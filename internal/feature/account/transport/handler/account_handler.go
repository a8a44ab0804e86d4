// Package handler はaccountフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"maddr_backend/internal/api"
	"maddr_backend/internal/feature/account/domain/entity"
	"maddr_backend/internal/feature/account/transport/http/dto"
	"maddr_backend/internal/feature/account/transport/middleware"
	"maddr_backend/internal/feature/account/usecase"
)

// AccountUsecase はアカウント操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AccountUsecase interface {
	Create(ctx context.Context, username, email, password string) (*entity.Account, error)
	Read(ctx context.Context, id uint) (*entity.Account, error)
	Update(ctx context.Context, id, actorID uint, username, email, password string) (*entity.Account, error)
	Delete(ctx context.Context, id, actorID uint) error
}

// AccountHandler はアカウント操作のHTTPリクエストを処理します。
type AccountHandler struct {
	accounts AccountUsecase
}

// NewAccountHandler はAccountHandlerの新しいインスタンスを生成します。
func NewAccountHandler(accounts AccountUsecase) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Create はアカウント登録エンドポイントを処理します。
// - ユーザー名またはメール重複時は409を返却（ユーザー名のメッセージが優先）
// - 成功時は201と公開表現を返却
func (h *AccountHandler) Create(c *gin.Context) {
	var req dto.CreateAccountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: err.Error()})
		return
	}

	account, err := h.accounts.Create(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUsernameTaken):
			c.JSON(http.StatusConflict, api.ErrorResponse{Detail: "Username already exists."})
		case errors.Is(err, usecase.ErrEmailTaken):
			c.JSON(http.StatusConflict, api.ErrorResponse{Detail: "Email already exists."})
		default:
			slog.Error("account creation failed", "error", err, "username", req.Username)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "Internal server error."})
		}
		return
	}

	slog.Info("account created", "id", account.ID, "username", account.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, toAccountResponse(account))
}

// Read はIDでアカウントの公開表現を返します。
func (h *AccountHandler) Read(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	account, err := h.accounts.Read(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Detail: "Account not found."})
			return
		}
		slog.Error("account read failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "Internal server error."})
		return
	}

	c.JSON(http.StatusOK, toAccountResponse(account))
}

// Update はアカウントの全フィールドを上書きします。所有者のみが実行できます。
func (h *AccountHandler) Update(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	var req dto.UpdateAccountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: err.Error()})
		return
	}

	actor := middleware.CurrentAccount(c)
	account, err := h.accounts.Update(c.Request.Context(), id, actor.ID, req.Username, req.Email, req.Password)
	if err != nil {
		h.writeOwnershipError(c, err, id)
		return
	}

	slog.Info("account updated", "id", account.ID, "actor", actor.ID)
	c.JSON(http.StatusOK, toAccountResponse(account))
}

// Delete はアカウントを削除します。所有者のみが実行できます。
func (h *AccountHandler) Delete(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	actor := middleware.CurrentAccount(c)
	if err := h.accounts.Delete(c.Request.Context(), id, actor.ID); err != nil {
		h.writeOwnershipError(c, err, id)
		return
	}

	slog.Info("account deleted", "id", id, "actor", actor.ID)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Account deleted successfully."})
}

// writeOwnershipError は更新・削除で共通のエラー応答を書き込みます。
func (h *AccountHandler) writeOwnershipError(c *gin.Context, err error, id uint) {
	switch {
	case errors.Is(err, usecase.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Detail: "Account not found."})
	case errors.Is(err, usecase.ErrNotOwner):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Detail: "Not enough permissions."})
	default:
		slog.Error("account mutation failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "Internal server error."})
	}
}

func accountID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "Invalid account id."})
		return 0, false
	}
	return uint(id), true
}

func toAccountResponse(a *entity.Account) api.AccountResponse {
	return api.AccountResponse{ID: a.ID, Username: a.Username, Email: a.Email}
}
