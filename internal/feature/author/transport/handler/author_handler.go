// Package handler はauthorフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"maddr_backend/internal/api"
	"maddr_backend/internal/feature/author/domain/entity"
	"maddr_backend/internal/feature/author/transport/http/dto"
	"maddr_backend/internal/feature/author/usecase"
)

// AuthorUsecase は著者操作のユースケースを定義します。
type AuthorUsecase interface {
	Create(ctx context.Context, name string) (*entity.Author, error)
	Read(ctx context.Context, id uint) (*entity.Author, error)
	Delete(ctx context.Context, id uint) error
}

// AuthorHandler は著者操作のHTTPリクエストを処理します。
type AuthorHandler struct {
	authors AuthorUsecase
}

// NewAuthorHandler はAuthorHandlerの新しいインスタンスを生成します。
func NewAuthorHandler(authors AuthorUsecase) *AuthorHandler {
	return &AuthorHandler{authors: authors}
}

// Create は著者登録エンドポイントを処理します。
func (h *AuthorHandler) Create(c *gin.Context) {
	var req dto.CreateAuthorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: err.Error()})
		return
	}

	author, err := h.authors.Create(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, usecase.ErrNameTaken) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Detail: "An author with this name already exists."})
			return
		}
		slog.Error("author creation failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "Internal server error."})
		return
	}

	c.JSON(http.StatusCreated, api.AuthorResponse{ID: author.ID, Name: author.Name})
}

// Read はIDで著者を返します。
func (h *AuthorHandler) Read(c *gin.Context) {
	id, ok := authorID(c)
	if !ok {
		return
	}

	author, err := h.authors.Read(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrAuthorNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Detail: "Author not found."})
			return
		}
		slog.Error("author read failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "Internal server error."})
		return
	}

	c.JSON(http.StatusOK, api.AuthorResponse{ID: author.ID, Name: author.Name})
}

// Delete は著者を削除します。書籍はカスケードしません。
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := authorID(c)
	if !ok {
		return
	}

	if err := h.authors.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrAuthorNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Detail: "Author not found."})
			return
		}
		slog.Error("author deletion failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "Internal server error."})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Author deleted successfully."})
}

func authorID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "Invalid author id."})
		return 0, false
	}
	return uint(id), true
}
