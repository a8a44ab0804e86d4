package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"maddr_backend/internal/api"
	accounthandler "maddr_backend/internal/feature/account/transport/handler"
	"maddr_backend/internal/feature/account/transport/middleware"
	authorhandler "maddr_backend/internal/feature/author/transport/handler"
	bookhandler "maddr_backend/internal/feature/book/transport/handler"
	novelisthandler "maddr_backend/internal/feature/novelist/transport/handler"
	"maddr_backend/internal/platform/ratelimit"
)

// トークン発行エンドポイントはブルートフォース対策としてIP単位で制限する
const (
	tokenRatePerSecond = 5
	tokenRateBurst     = 10
)

func NewRouter(accounts *accounthandler.AccountHandler, tokens *accounthandler.TokenHandler,
	authors *authorhandler.AuthorHandler, novelists *novelisthandler.NovelistHandler,
	books *bookhandler.BookHandler, resolver middleware.AccountResolver) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/", welcome)
	r.GET("/healthz", health)
	// 新規アカウント登録と公開プロフィール
	r.POST("/account", accounts.Create)
	r.GET("/account/:id", accounts.Read)

	// トークン発行（レート制限付き）
	token := r.Group("/")
	token.Use(ratelimit.PerIP(tokenRatePerSecond, tokenRateBurst))
	{
		token.POST("/token", tokens.Issue)
		token.POST("/refresh", tokens.Refresh)
	}

	// 認証必須のルート
	// middleware.AuthRequired を適用
	// → リクエストヘッダーに Bearer トークンが必要になる
	auth := r.Group("/")
	auth.Use(middleware.AuthRequired(resolver))
	{
		auth.PUT("/account/:id", accounts.Update)
		auth.DELETE("/account/:id", accounts.Delete)

		auth.POST("/author", authors.Create)
		auth.GET("/author/:id", authors.Read)
		auth.DELETE("/author/:id", authors.Delete)

		auth.POST("/novelist", novelists.Create)
		auth.GET("/novelist/:id", novelists.Read)

		auth.POST("/book", books.Create)
		auth.GET("/book", books.List)
		auth.GET("/book/:id", books.Read)
	}

	return r
}

func welcome(c *gin.Context) {
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Welcome to the MADDR API!"})
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
