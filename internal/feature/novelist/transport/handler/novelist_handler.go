// Package handler はnovelistフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"maddr_backend/internal/api"
	"maddr_backend/internal/feature/novelist/domain/entity"
	"maddr_backend/internal/feature/novelist/transport/http/dto"
	"maddr_backend/internal/feature/novelist/usecase"
)

// NovelistUsecase は小説家操作のユースケースを定義します。
type NovelistUsecase interface {
	Create(ctx context.Context, name string) (*entity.Novelist, error)
	Read(ctx context.Context, id uint) (*entity.Novelist, error)
}

// NovelistHandler は小説家操作のHTTPリクエストを処理します。
type NovelistHandler struct {
	novelists NovelistUsecase
}

// NewNovelistHandler はNovelistHandlerの新しいインスタンスを生成します。
func NewNovelistHandler(novelists NovelistUsecase) *NovelistHandler {
	return &NovelistHandler{novelists: novelists}
}

// Create は小説家登録エンドポイントを処理します。
func (h *NovelistHandler) Create(c *gin.Context) {
	var req dto.CreateNovelistReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: err.Error()})
		return
	}

	novelist, err := h.novelists.Create(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, usecase.ErrNameTaken) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Detail: "A novelist with this name already exists."})
			return
		}
		slog.Error("novelist creation failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "Internal server error."})
		return
	}

	c.JSON(http.StatusCreated, api.NovelistResponse{ID: novelist.ID, Name: novelist.Name})
}

// Read はIDで小説家を返します。
func (h *NovelistHandler) Read(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "Invalid novelist id."})
		return
	}

	novelist, err := h.novelists.Read(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, usecase.ErrNovelistNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Detail: "Novelist not found."})
			return
		}
		slog.Error("novelist read failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "Internal server error."})
		return
	}

	c.JSON(http.StatusOK, api.NovelistResponse{ID: novelist.ID, Name: novelist.Name})
}
