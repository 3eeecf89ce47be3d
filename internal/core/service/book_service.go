package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bookshelf/books-api/internal/core/domain"
	"github.com/bookshelf/books-api/internal/core/ports"
)

type BookService struct {
	repo   ports.BookRepository
	logger zerolog.Logger
}

func NewBookService(repo ports.BookRepository, logger zerolog.Logger) *BookService {
	return &BookService{repo: repo, logger: logger}
}

// CreateBook stamps creation/update time and inserts the book.
func (s *BookService) CreateBook(ctx context.Context, input ports.BookInput) (*domain.Book, error) {
	now := time.Now().UTC()
	book := &domain.Book{
		Title:     input.Title,
		Category:  input.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, book); err != nil {
		s.logger.Error().Err(err).Msg("failed to create book")
		return nil, err
	}

	s.logger.Info().Str("title", book.Title).Str("category", book.Category).Msg("book created")
	return book, nil
}

// ListBooks returns all rows, unfiltered and unpaginated.
func (s *BookService) ListBooks(ctx context.Context) ([]*domain.Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list books")
		return nil, err
	}
	return books, nil
}

// UpdateBook rewrites title and category and stamps the update time.
// An unknown identifier surfaces as domain.ErrBookNotFound.
func (s *BookService) UpdateBook(ctx context.Context, id int64, input ports.BookInput) (*domain.Book, error) {
	book := &domain.Book{
		ID:        id,
		Title:     input.Title,
		Category:  input.Category,
		UpdatedAt: time.Now().UTC(),
	}

	if err := s.repo.Update(ctx, book); err != nil {
		if err != domain.ErrBookNotFound {
			s.logger.Error().Err(err).Int64("book_id", id).Msg("failed to update book")
		}
		return nil, err
	}

	s.logger.Info().Int64("book_id", id).Msg("book updated")
	return book, nil
}

func (s *BookService) DeleteBook(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err != domain.ErrBookNotFound {
			s.logger.Error().Err(err).Int64("book_id", id).Msg("failed to delete book")
		}
		return err
	}

	s.logger.Info().Int64("book_id", id).Msg("book deleted")
	return nil
}
