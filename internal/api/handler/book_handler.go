package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bookshelf/books-api/internal/api/metrics"
	"github.com/bookshelf/books-api/internal/core/domain"
	"github.com/bookshelf/books-api/internal/core/ports"
)

// BookHandler handles HTTP requests for book operations. Every route it
// serves sits behind the Auth middleware.
type BookHandler struct {
	service ports.BookService
}

func NewBookHandler(service ports.BookService) *BookHandler {
	return &BookHandler{service: service}
}

// Create handles POST /book.
//
// @Summary      Add a new book
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bookRequest  true  "Book details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /book [post]
func (h *BookHandler) Create(c echo.Context) error {
	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	if _, err := h.service.CreateBook(c.Request().Context(), ports.BookInput{
		Title:    req.Title,
		Category: req.Category,
	}); err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{
			Message: "Server could not create book because database connection",
		})
	}

	metrics.BookWritesTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "Created book successfully"})
}

// List handles GET /book.
//
// @Summary      Get all books
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listBooksResponse
// @Failure      401  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /book [get]
func (h *BookHandler) List(c echo.Context) error {
	books, err := h.service.ListBooks(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{
			Message: "Server could not read book because database issue",
		})
	}

	if books == nil {
		books = []*domain.Book{}
	}
	return c.JSON(http.StatusOK, listBooksResponse{Data: books})
}

// Update handles PUT /book/:id.
//
// @Summary      Update a book's information
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Book ID"
// @Param        body  body      bookRequest  true  "Book details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /book/{id} [put]
func (h *BookHandler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Book not found"})
	}

	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	if _, err := h.service.UpdateBook(c.Request().Context(), id, ports.BookInput{
		Title:    req.Title,
		Category: req.Category,
	}); err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Book not found"})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{
			Message: "Server could not update book because of database connection issue",
		})
	}

	metrics.BookWritesTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Updated book successfully"})
}

// Delete handles DELETE /book/:id.
//
// @Summary      Delete a book
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Book ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /book/{id} [delete]
func (h *BookHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Book not found"})
	}

	if err := h.service.DeleteBook(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Book not found"})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{
			Message: "Server could not delete book because of database connection issue",
		})
	}

	metrics.BookWritesTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Deleted book successfully"})
}
