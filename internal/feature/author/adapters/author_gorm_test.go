package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"maddr_backend/internal/feature/author/domain/entity"
	"maddr_backend/internal/feature/author/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Author{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestAuthorGorm_CreateAndFind(t *testing.T) {
	repo := NewAuthorGorm(setupTestDB(t))

	author := &entity.Author{Name: "sample author"}
	require.NoError(t, repo.Create(context.Background(), author))
	assert.NotZero(t, author.ID)

	found, err := repo.FindByName(context.Background(), "sample author")
	require.NoError(t, err)
	assert.Equal(t, author.ID, found.ID)

	_, err = repo.FindByName(context.Background(), "ghost writer")
	assert.ErrorIs(t, err, usecase.ErrAuthorNotFound)
}

func TestAuthorGorm_DuplicateName(t *testing.T) {
	repo := NewAuthorGorm(setupTestDB(t))
	require.NoError(t, repo.Create(context.Background(), &entity.Author{Name: "sample author"}))

	err := repo.Create(context.Background(), &entity.Author{Name: "sample author"})

	assert.ErrorIs(t, err, usecase.ErrNameTaken, "schema constraint should map to the conflict error")
}

func TestAuthorGorm_Delete(t *testing.T) {
	repo := NewAuthorGorm(setupTestDB(t))
	author := &entity.Author{Name: "sample author"}
	require.NoError(t, repo.Create(context.Background(), author))

	require.NoError(t, repo.Delete(context.Background(), author.ID))

	_, err := repo.FindByID(context.Background(), author.ID)
	assert.ErrorIs(t, err, usecase.ErrAuthorNotFound)

	assert.ErrorIs(t, repo.Delete(context.Background(), author.ID), usecase.ErrAuthorNotFound)
}
