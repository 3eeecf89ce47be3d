package ports

import (
	"context"

	"github.com/bookshelf/books-api/internal/core/domain"
)

// BookRepository defines persistence operations for books. Every method maps
// to exactly one SQL statement; Update and Delete report
// domain.ErrBookNotFound when no row matches the identifier.
type BookRepository interface {
	Create(ctx context.Context, b *domain.Book) error
	List(ctx context.Context) ([]*domain.Book, error)
	Update(ctx context.Context, b *domain.Book) error
	Delete(ctx context.Context, id int64) error
}
