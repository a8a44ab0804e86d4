package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"maddr_backend/internal/feature/account/usecase"
)

// mockTokenUsecase is a mock implementation of the TokenUsecase interface.
type mockTokenUsecase struct {
	IssueFunc   func(ctx context.Context, username, password string) (*usecase.Token, error)
	RefreshFunc func(ctx context.Context, username, password string) (*usecase.Token, error)
}

func (m *mockTokenUsecase) Issue(ctx context.Context, username, password string) (*usecase.Token, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, username, password)
	}
	return nil, usecase.ErrInvalidCredentials
}

func (m *mockTokenUsecase) Refresh(ctx context.Context, username, password string) (*usecase.Token, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, username, password)
	}
	return nil, usecase.ErrInvalidCredentials
}

func TestTokenHandler_Issue(t *testing.T) {
	gin.SetMode(gin.TestMode)

	okIssue := func(ctx context.Context, username, password string) (*usecase.Token, error) {
		if username == "alice" && password == "testpass" {
			return &usecase.Token{AccessToken: "signed-token", TokenType: "bearer"}, nil
		}
		return nil, usecase.ErrInvalidCredentials
	}

	newRouter := func() *gin.Engine {
		h := NewTokenHandler(&mockTokenUsecase{IssueFunc: okIssue})
		router := gin.New()
		router.POST("/token", h.Issue)
		return router
	}

	t.Run("form credentials issue a token", func(t *testing.T) {
		form := url.Values{"username": {"alice"}, "password": {"testpass"}}
		req, _ := http.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"access_token":"signed-token"`)
		assert.Contains(t, w.Body.String(), `"token_type":"bearer"`)
	})

	t.Run("JSON credentials issue a token", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPost, "/token",
			strings.NewReader(`{"username":"alice","password":"testpass"}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad credentials get one generic message", func(t *testing.T) {
		form := url.Values{"username": {"alice"}, "password": {"wrong"}}
		req, _ := http.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Incorrect username or password.")
	})

	t.Run("missing fields are rejected before the usecase runs", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPost, "/token", strings.NewReader(url.Values{}.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTokenHandler_Refresh(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewTokenHandler(&mockTokenUsecase{
		RefreshFunc: func(ctx context.Context, username, password string) (*usecase.Token, error) {
			return &usecase.Token{AccessToken: "fresh-token", TokenType: "bearer"}, nil
		},
	})
	router := gin.New()
	router.POST("/refresh", h.Refresh)

	form := url.Values{"username": {"alice"}, "password": {"testpass"}}
	req, _ := http.NewRequest(http.MethodPost, "/refresh", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fresh-token")
}
