package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-book-keeper/internal/app"
	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/internal/utils"
	"github.com/MKhiriev/go-book-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) addBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var book models.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	if _, err := h.services.BookService.AddBook(ctx, book); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgBookAdded}, http.StatusOK)
}

func (h *Handler) getBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.services.BookService.GetAllBooks(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeBooks(w, books)
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}

	book, err := h.services.BookService.GetBook(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, book, http.StatusOK)
}

func (h *Handler) getBooksByTitle(w http.ResponseWriter, r *http.Request) {
	books, err := h.services.BookService.FindBooksByTitle(r.Context(), chi.URLParam(r, "title"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeBooks(w, books)
}

func (h *Handler) getBooksByAuthor(w http.ResponseWriter, r *http.Request) {
	books, err := h.services.BookService.FindBooksByAuthor(r.Context(), chi.URLParam(r, "author"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeBooks(w, books)
}

func (h *Handler) getBooksByGenre(w http.ResponseWriter, r *http.Request) {
	books, err := h.services.BookService.FindBooksByGenre(r.Context(), chi.URLParam(r, "genre"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeBooks(w, books)
}

func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := bookID(w, r)
	if !ok {
		return
	}

	var update models.BookUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}
	update.ID = id

	updatedBook, err := h.services.BookService.UpdateBook(ctx, update)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, updatedBook, http.StatusOK)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}

	if err := h.services.BookService.DeleteBook(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgBookDeleted}, http.StatusOK)
}

// bookID extracts the {id} route parameter. A non-numeric id is reported as
// not found, the same as an absent row.
func bookID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("non-numeric book id")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgBookNotFound}, http.StatusNotFound)
		return 0, false
	}

	return id, true
}

// writeBooks serializes a book collection, normalising a nil slice to an
// empty JSON array.
func writeBooks(w http.ResponseWriter, books []models.Book) {
	if books == nil {
		books = []models.Book{}
	}

	utils.WriteJSON(w, books, http.StatusOK)
}
