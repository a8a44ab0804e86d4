package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountentity "maddr_backend/internal/feature/account/domain/entity"
	bookentity "maddr_backend/internal/feature/book/domain/entity"
)

func TestOpen_SQLite(t *testing.T) {
	conn, err := Open(":memory:")

	require.NoError(t, err, "failed to open in-memory database")
	assert.NotNil(t, conn)
}

func TestAutoMigrate(t *testing.T) {
	conn, err := Open(":memory:")
	require.NoError(t, err)

	err = AutoMigrate(conn)
	require.NoError(t, err, "failed to migrate schema")

	assert.True(t, conn.Migrator().HasTable(&accountentity.Account{}), "accounts table missing")
	assert.True(t, conn.Migrator().HasTable(&bookentity.Book{}), "books table missing")
}

func TestAutoMigrate_UniqueConstraints(t *testing.T) {
	conn, err := Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(conn))

	// The uniqueness race is closed at the schema level, not in service code.
	first := &accountentity.Account{Username: "u1", Email: "u1@x.com", Password: "h"}
	require.NoError(t, conn.Create(first).Error)

	dup := &accountentity.Account{Username: "u1", Email: "other@x.com", Password: "h"}
	assert.Error(t, conn.Create(dup).Error, "duplicate username should violate the schema constraint")
}
