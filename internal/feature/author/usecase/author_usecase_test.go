package usecase

import (
	"context"
	"errors"
	"testing"

	"maddr_backend/internal/feature/author/domain/entity"
)

// mockAuthorRepository is a mock implementation of the AuthorRepository interface.
type mockAuthorRepository struct {
	CreateFunc     func(ctx context.Context, author *entity.Author) error
	FindByIDFunc   func(ctx context.Context, id uint) (*entity.Author, error)
	FindByNameFunc func(ctx context.Context, name string) (*entity.Author, error)
	DeleteFunc     func(ctx context.Context, id uint) error
}

func (m *mockAuthorRepository) Create(ctx context.Context, author *entity.Author) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, author)
	}
	return nil
}

func (m *mockAuthorRepository) FindByID(ctx context.Context, id uint) (*entity.Author, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrAuthorNotFound
}

func (m *mockAuthorRepository) FindByName(ctx context.Context, name string) (*entity.Author, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, ErrAuthorNotFound
}

func (m *mockAuthorRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func TestAuthorUsecase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the sanitized name", func(t *testing.T) {
		mockRepo := &mockAuthorRepository{
			CreateFunc: func(ctx context.Context, author *entity.Author) error {
				if author.Name != "sample author" {
					t.Errorf("name was not sanitized: %q", author.Name)
				}
				return nil
			},
		}

		uc := NewAuthorUsecase(mockRepo)
		author, err := uc.Create(ctx, "  Sample   Author!  ")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if author.Name != "sample author" {
			t.Errorf("unexpected name: %q", author.Name)
		}
	})

	t.Run("uniqueness is checked on the normalized form", func(t *testing.T) {
		mockRepo := &mockAuthorRepository{
			FindByNameFunc: func(ctx context.Context, name string) (*entity.Author, error) {
				if name == "sample author" {
					return &entity.Author{ID: 1, Name: name}, nil
				}
				return nil, ErrAuthorNotFound
			},
		}

		uc := NewAuthorUsecase(mockRepo)
		_, err := uc.Create(ctx, "SAMPLE  author")

		if !errors.Is(err, ErrNameTaken) {
			t.Errorf("expected ErrNameTaken, got: %v", err)
		}
	})
}

func TestAuthorUsecase_Read(t *testing.T) {
	ctx := context.Background()

	t.Run("missing author", func(t *testing.T) {
		uc := NewAuthorUsecase(&mockAuthorRepository{})

		_, err := uc.Read(ctx, 42)

		if !errors.Is(err, ErrAuthorNotFound) {
			t.Errorf("expected ErrAuthorNotFound, got: %v", err)
		}
	})
}

func TestAuthorUsecase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("existing author is deleted", func(t *testing.T) {
		deleted := false
		mockRepo := &mockAuthorRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Author, error) {
				return &entity.Author{ID: id, Name: "sample author"}, nil
			},
			DeleteFunc: func(ctx context.Context, id uint) error {
				deleted = true
				return nil
			},
		}

		uc := NewAuthorUsecase(mockRepo)
		if err := uc.Delete(ctx, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !deleted {
			t.Error("repository delete was not called")
		}
	})

	t.Run("missing author", func(t *testing.T) {
		uc := NewAuthorUsecase(&mockAuthorRepository{})

		err := uc.Delete(ctx, 42)

		if !errors.Is(err, ErrAuthorNotFound) {
			t.Errorf("expected ErrAuthorNotFound, got: %v", err)
		}
	})
}
