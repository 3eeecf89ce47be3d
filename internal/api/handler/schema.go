package handler

import "github.com/bookshelf/books-api/internal/core/domain"

// messageResponse is the single-field envelope used for every acknowledgment
// and error body.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth request / response types ---

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email"    validate:"omitempty,email"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// --- Book request / response types ---

type bookRequest struct {
	Title    string `json:"title"    validate:"required"`
	Category string `json:"category" validate:"required"`
}

type listBooksResponse struct {
	Data []*domain.Book `json:"data"`
}
