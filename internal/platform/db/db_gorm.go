// Package db opens the GORM connection used by every repository.
package db

import (
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	accountentity "maddr_backend/internal/feature/account/domain/entity"
	authorentity "maddr_backend/internal/feature/author/domain/entity"
	bookentity "maddr_backend/internal/feature/book/domain/entity"
	novelistentity "maddr_backend/internal/feature/novelist/domain/entity"
)

// Open は接続文字列からデータベース接続を確立します。
// postgres:// で始まるDSNはPostgreSQL、それ以外はSQLiteファイルとして扱います。
// 起動直後にDBが立ち上がっていない場合に備え、一定時間リトライします。
func Open(databaseURL string) (*gorm.DB, error) {
	dialector := dialectorFor(databaseURL)

	// TranslateError: ドライバ固有の一意制約違反をgorm.ErrDuplicatedKeyに正規化する
	cfg := &gorm.Config{TranslateError: true}

	var (
		conn *gorm.DB
		err  error
	)
	deadline := time.Now().Add(60 * time.Second)
	for {
		conn, err = gorm.Open(dialector, cfg)
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after 60s: %w", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	return conn, nil
}

func dialectorFor(databaseURL string) gorm.Dialector {
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		return postgres.Open(databaseURL)
	}
	return sqlite.Open(databaseURL)
}

// AutoMigrate はスキーマを作成・更新します。
// 一意制約（username, email, name, title）はここで張られるuniqueIndexが担保します。
func AutoMigrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&accountentity.Account{},
		&authorentity.Author{},
		&novelistentity.Novelist{},
		&bookentity.Book{},
	)
}
