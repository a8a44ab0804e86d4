// Package handler はbookフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"maddr_backend/internal/api"
	"maddr_backend/internal/feature/book/domain/entity"
	"maddr_backend/internal/feature/book/transport/http/dto"
	"maddr_backend/internal/feature/book/usecase"
)

// BookUsecase は書籍操作のユースケースを定義します。
type BookUsecase interface {
	Create(ctx context.Context, title string, authorID uint, publishYear int) (*entity.Book, error)
	Read(ctx context.Context, id uint) (*entity.Book, error)
	List(ctx context.Context, filter usecase.ListFilter, skip, limit int) ([]entity.Book, error)
}

// BookHandler は書籍操作のHTTPリクエストを処理します。
type BookHandler struct {
	books BookUsecase
}

// NewBookHandler はBookHandlerの新しいインスタンスを生成します。
func NewBookHandler(books BookUsecase) *BookHandler {
	return &BookHandler{books: books}
}

// Create は書籍登録エンドポイントを処理します。
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: err.Error()})
		return
	}

	book, err := h.books.Create(c.Request.Context(), req.Title, req.AuthorID, req.PublishYear)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTitleTaken):
			c.JSON(http.StatusConflict, api.ErrorResponse{Detail: "A book with this title already exists."})
		case errors.Is(err, usecase.ErrAuthorNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Detail: "Author not found."})
		default:
			slog.Error("book creation failed", "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "Internal server error."})
		}
		return
	}

	c.JSON(http.StatusCreated, toBookResponse(book))
}

// Read はIDで書籍を返します。
func (h *BookHandler) Read(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "Invalid book id."})
		return
	}

	book, err := h.books.Read(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, usecase.ErrBookNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Detail: "Book not found."})
			return
		}
		slog.Error("book read failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "Internal server error."})
		return
	}

	c.JSON(http.StatusOK, toBookResponse(book))
}

// List は条件に一致する書籍の一覧を返します。
// 一致が0件の場合は404を返します（空リストは返しません）。
func (h *BookHandler) List(c *gin.Context) {
	filter := usecase.ListFilter{TitleContains: c.Query("title")}

	if year := c.Query("publish_year"); year != "" {
		parsed, err := strconv.Atoi(year)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "Invalid publish_year."})
			return
		}
		filter.PublishYear = parsed
	}

	skip, ok := intQuery(c, "skip", 0)
	if !ok {
		return
	}
	limit, ok := intQuery(c, "limit", 0)
	if !ok {
		return
	}

	books, err := h.books.List(c.Request.Context(), filter, skip, limit)
	if err != nil {
		if errors.Is(err, usecase.ErrNoBooksFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Detail: "No books found."})
			return
		}
		slog.Error("book listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "Internal server error."})
		return
	}

	resp := make([]api.BookResponse, 0, len(books))
	for i := range books {
		resp = append(resp, toBookResponse(&books[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func intQuery(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "Invalid " + name + "."})
		return 0, false
	}
	return parsed, true
}

func toBookResponse(book *entity.Book) api.BookResponse {
	return api.BookResponse{
		ID:          book.ID,
		Title:       book.Title,
		AuthorID:    book.AuthorID,
		PublishYear: book.PublishYear,
	}
}
