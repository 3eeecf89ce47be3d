package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bookshelf/books-api/internal/core/domain"
	"github.com/bookshelf/books-api/internal/core/ports"
)

type stubBookRepo struct {
	createFn func(ctx context.Context, b *domain.Book) error
	listFn   func(ctx context.Context) ([]*domain.Book, error)
	updateFn func(ctx context.Context, b *domain.Book) error
	deleteFn func(ctx context.Context, id int64) error
}

func (r *stubBookRepo) Create(ctx context.Context, b *domain.Book) error { return r.createFn(ctx, b) }
func (r *stubBookRepo) List(ctx context.Context) ([]*domain.Book, error) { return r.listFn(ctx) }
func (r *stubBookRepo) Update(ctx context.Context, b *domain.Book) error { return r.updateFn(ctx, b) }
func (r *stubBookRepo) Delete(ctx context.Context, id int64) error       { return r.deleteFn(ctx, id) }

func TestBookService_CreateBook_StampsTimestamps(t *testing.T) {
	var stored *domain.Book
	repo := &stubBookRepo{
		createFn: func(_ context.Context, b *domain.Book) error {
			b.ID = 7
			stored = b
			return nil
		},
	}
	svc := NewBookService(repo, zerolog.Nop())

	book, err := svc.CreateBook(context.Background(), ports.BookInput{Title: "Dune", Category: "sci-fi"})
	if err != nil {
		t.Fatalf("CreateBook returned error: %v", err)
	}
	if stored == nil {
		t.Fatalf("repo not called")
	}
	if book.Title != "Dune" || book.Category != "sci-fi" {
		t.Fatalf("unexpected book: %+v", book)
	}
	if book.CreatedAt.IsZero() || book.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be stamped")
	}
	if !book.CreatedAt.Equal(book.UpdatedAt) {
		t.Fatalf("expected created_at == updated_at on create")
	}
	if book.ID != 7 {
		t.Fatalf("expected repo-assigned id, got %d", book.ID)
	}
}

func TestBookService_CreateBook_RepoError(t *testing.T) {
	dbErr := errors.New("connection refused")
	repo := &stubBookRepo{
		createFn: func(_ context.Context, _ *domain.Book) error { return dbErr },
	}
	svc := NewBookService(repo, zerolog.Nop())

	if _, err := svc.CreateBook(context.Background(), ports.BookInput{Title: "x", Category: "y"}); !errors.Is(err, dbErr) {
		t.Fatalf("expected repo error to propagate, got %v", err)
	}
}

func TestBookService_ListBooks(t *testing.T) {
	repo := &stubBookRepo{
		listFn: func(_ context.Context) ([]*domain.Book, error) {
			return []*domain.Book{{ID: 1, Title: "Dune", Category: "sci-fi"}}, nil
		},
	}
	svc := NewBookService(repo, zerolog.Nop())

	books, err := svc.ListBooks(context.Background())
	if err != nil {
		t.Fatalf("ListBooks returned error: %v", err)
	}
	if len(books) != 1 || books[0].Title != "Dune" {
		t.Fatalf("unexpected books: %+v", books)
	}
}

func TestBookService_UpdateBook_StampsUpdateTime(t *testing.T) {
	var stored *domain.Book
	repo := &stubBookRepo{
		updateFn: func(_ context.Context, b *domain.Book) error {
			stored = b
			return nil
		},
	}
	svc := NewBookService(repo, zerolog.Nop())

	book, err := svc.UpdateBook(context.Background(), 42, ports.BookInput{Title: "Dune", Category: "classic"})
	if err != nil {
		t.Fatalf("UpdateBook returned error: %v", err)
	}
	if stored == nil || stored.ID != 42 {
		t.Fatalf("repo not called with id 42: %+v", stored)
	}
	if book.UpdatedAt.IsZero() {
		t.Fatalf("expected updated_at to be stamped")
	}
}

func TestBookService_UpdateBook_NotFound(t *testing.T) {
	repo := &stubBookRepo{
		updateFn: func(_ context.Context, _ *domain.Book) error { return domain.ErrBookNotFound },
	}
	svc := NewBookService(repo, zerolog.Nop())

	if _, err := svc.UpdateBook(context.Background(), 99, ports.BookInput{Title: "x", Category: "y"}); err != domain.ErrBookNotFound {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}
}

func TestBookService_DeleteBook_NotFound(t *testing.T) {
	repo := &stubBookRepo{
		deleteFn: func(_ context.Context, _ int64) error { return domain.ErrBookNotFound },
	}
	svc := NewBookService(repo, zerolog.Nop())

	if err := svc.DeleteBook(context.Background(), 99); err != domain.ErrBookNotFound {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}
}

func TestBookService_DeleteBook_Success(t *testing.T) {
	var deleted int64
	repo := &stubBookRepo{
		deleteFn: func(_ context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	svc := NewBookService(repo, zerolog.Nop())

	if err := svc.DeleteBook(context.Background(), 3); err != nil {
		t.Fatalf("DeleteBook returned error: %v", err)
	}
	if deleted != 3 {
		t.Fatalf("expected delete of id 3, got %d", deleted)
	}
}
