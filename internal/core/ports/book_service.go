package ports

import (
	"context"

	"github.com/bookshelf/books-api/internal/core/domain"
)

// BookInput carries the client-supplied fields of a book. Timestamps are
// stamped by the service, never taken from the request.
type BookInput struct {
	Title    string
	Category string
}

// BookService defines use-case operations for books.
type BookService interface {
	CreateBook(ctx context.Context, input BookInput) (*domain.Book, error)
	ListBooks(ctx context.Context) ([]*domain.Book, error)
	UpdateBook(ctx context.Context, id int64, input BookInput) (*domain.Book, error)
	DeleteBook(ctx context.Context, id int64) error
}
