package main

import (
	"log"

	"maddr_backend/internal/app/config"
	"maddr_backend/internal/app/router"
	accountadapters "maddr_backend/internal/feature/account/adapters"
	accounthandler "maddr_backend/internal/feature/account/transport/handler"
	accountusecase "maddr_backend/internal/feature/account/usecase"
	authoradapters "maddr_backend/internal/feature/author/adapters"
	authorhandler "maddr_backend/internal/feature/author/transport/handler"
	authorusecase "maddr_backend/internal/feature/author/usecase"
	bookadapters "maddr_backend/internal/feature/book/adapters"
	bookhandler "maddr_backend/internal/feature/book/transport/handler"
	bookusecase "maddr_backend/internal/feature/book/usecase"
	novelistadapters "maddr_backend/internal/feature/novelist/adapters"
	novelisthandler "maddr_backend/internal/feature/novelist/transport/handler"
	novelistusecase "maddr_backend/internal/feature/novelist/usecase"
	"maddr_backend/internal/platform/db"
	jwtauth "maddr_backend/internal/platform/jwt"
)

func main() {
	// 設定は起動時に一度だけ読み込み、必要なコンポーネントへ渡す
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// db
	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.RunMigrations {
		if err := db.AutoMigrate(conn); err != nil {
			log.Fatal(err)
		}
	}

	// トークン生成器
	generator := jwtauth.NewGenerator(cfg.SecretKey, cfg.AccessTokenTTL)

	// Repository
	accountRepo := accountadapters.NewAccountGorm(conn)
	authorRepo := authoradapters.NewAuthorGorm(conn)
	novelistRepo := novelistadapters.NewNovelistGorm(conn)
	bookRepo := bookadapters.NewBookGorm(conn)
	authorChecker := bookadapters.NewAuthorCheckerGorm(conn)

	// Usecase
	accountUC := accountusecase.NewAccountUsecase(accountRepo)
	tokenUC := accountusecase.NewTokenUsecase(accountRepo, generator)
	resolver := accountusecase.NewAuthenticator(accountRepo, generator)
	authorUC := authorusecase.NewAuthorUsecase(authorRepo)
	novelistUC := novelistusecase.NewNovelistUsecase(novelistRepo)
	bookUC := bookusecase.NewBookUsecase(bookRepo, authorChecker)

	// Handler
	accountH := accounthandler.NewAccountHandler(accountUC)
	tokenH := accounthandler.NewTokenHandler(tokenUC)
	authorH := authorhandler.NewAuthorHandler(authorUC)
	novelistH := novelisthandler.NewNovelistHandler(novelistUC)
	bookH := bookhandler.NewBookHandler(bookUC)

	// ルータ生成
	r := router.NewRouter(accountH, tokenH, authorH, novelistH, bookH, resolver)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
