package http

import (
	"net/http"

	"github.com/MKhiriev/go-library-catalog/internal/app"
	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/internal/utils"
	"github.com/MKhiriev/go-library-catalog/models"
)

var (
	createAuthorMessages    = routeMessages{invalid: app.MsgAuthorNamesRequired, internal: app.MsgDatabaseErrorAddingAuthor}
	createPublisherMessages = routeMessages{invalid: app.MsgPublisherNameRequired, internal: app.MsgDatabaseErrorAddingPublisher}
	createBookMessages      = routeMessages{invalid: app.MsgBookFieldsRequired, internal: app.MsgDatabaseErrorAddingBook}

	listBooksMessages        = routeMessages{internal: app.MsgDatabaseErrorFetchingBooks}
	searchBooksMessages      = routeMessages{invalid: app.MsgTitleQueryRequired, internal: app.MsgDatabaseErrorSearchingBooks}
	searchAuthorsMessages    = routeMessages{invalid: app.MsgNameQueryRequired, internal: app.MsgDatabaseErrorSearchingAuthors}
	searchPublishersMessages = routeMessages{invalid: app.MsgNameQueryRequired, internal: app.MsgDatabaseErrorSearchingPublishers}

	// book detail and per-author/per-publisher lists share the generic message
	lookupMessages = routeMessages{internal: app.MsgDatabaseError}
)

func (h *Handler) createAuthor(w http.ResponseWriter, r *http.Request) {
	var request models.CreateAuthorRequest
	if err := decodeJSON(r, &request); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	authorID, err := h.services.AuthorService.CreateAuthor(r.Context(), request)
	if err != nil {
		writeError(w, r, err, createAuthorMessages)
		return
	}

	utils.WriteJSON(w, models.AuthorCreatedResponse{Message: app.MsgAuthorAdded, AuthorID: authorID}, http.StatusCreated)
}

func (h *Handler) createPublisher(w http.ResponseWriter, r *http.Request) {
	var request models.CreatePublisherRequest
	if err := decodeJSON(r, &request); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	publisherID, err := h.services.PublisherService.CreatePublisher(r.Context(), request)
	if err != nil {
		writeError(w, r, err, createPublisherMessages)
		return
	}

	utils.WriteJSON(w, models.PublisherCreatedResponse{Message: app.MsgPublisherAdded, PublisherID: publisherID}, http.StatusCreated)
}

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	var request models.CreateBookRequest
	if err := decodeJSON(r, &request); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	bookID, err := h.services.BookService.CreateBook(r.Context(), request)
	if err != nil {
		writeError(w, r, err, createBookMessages)
		return
	}

	utils.WriteJSON(w, models.BookCreatedResponse{Message: app.MsgBookAdded, BookID: bookID}, http.StatusCreated)
}

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.services.BookService.ListBooks(r.Context())
	if err != nil {
		writeError(w, r, err, listBooksMessages)
		return
	}

	utils.WriteJSON(w, books, http.StatusOK)
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	bookID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, lookupMessages)
		return
	}

	book, err := h.services.BookService.GetBook(r.Context(), bookID)
	if err != nil {
		writeError(w, r, err, lookupMessages)
		return
	}

	utils.WriteJSON(w, book, http.StatusOK)
}

func (h *Handler) listBooksByAuthor(w http.ResponseWriter, r *http.Request) {
	authorID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, lookupMessages)
		return
	}

	books, err := h.services.BookService.ListBooksByAuthor(r.Context(), authorID)
	if err != nil {
		writeError(w, r, err, lookupMessages)
		return
	}

	utils.WriteJSON(w, books, http.StatusOK)
}

func (h *Handler) listBooksByPublisher(w http.ResponseWriter, r *http.Request) {
	publisherID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, lookupMessages)
		return
	}

	books, err := h.services.BookService.ListBooksByPublisher(r.Context(), publisherID)
	if err != nil {
		writeError(w, r, err, lookupMessages)
		return
	}

	utils.WriteJSON(w, books, http.StatusOK)
}

func (h *Handler) searchBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.services.BookService.SearchBooks(r.Context(), r.URL.Query().Get("title"))
	if err != nil {
		writeError(w, r, err, searchBooksMessages)
		return
	}

	utils.WriteJSON(w, books, http.StatusOK)
}

func (h *Handler) searchAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.services.AuthorService.SearchAuthors(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		writeError(w, r, err, searchAuthorsMessages)
		return
	}

	utils.WriteJSON(w, authors, http.StatusOK)
}

func (h *Handler) searchPublishers(w http.ResponseWriter, r *http.Request) {
	publishers, err := h.services.PublisherService.SearchPublishers(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		writeError(w, r, err, searchPublishersMessages)
		return
	}

	utils.WriteJSON(w, publishers, http.StatusOK)
}
