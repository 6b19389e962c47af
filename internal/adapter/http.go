package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-library-catalog/internal/config"
	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/internal/utils"
	"github.com/MKhiriev/go-library-catalog/models"
	"github.com/go-resty/resty/v2"
)

type httpCatalogAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPCatalogAdapter builds a [CatalogAPI] backed by resty. The base URL is
// taken from cfg.HTTPAddress; a missing scheme defaults to http.
func NewHTTPCatalogAdapter(cfg config.Adapter, logger *logger.Logger) (CatalogAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpCatalogAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpCatalogAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpCatalogAdapter) Token() string {
	return h.token
}

func (h *httpCatalogAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (h *httpCatalogAdapter) Signup(ctx context.Context, req models.SignupRequest) (models.SignupResponse, error) {
	var out models.SignupResponse
	if err := h.postJSON(h.client.R().SetContext(ctx), "/api/signup", req, &out); err != nil {
		return models.SignupResponse{}, fmt.Errorf("signup request: %w", err)
	}

	return out, nil
}

func (h *httpCatalogAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var out models.LoginResponse
	if err := h.postJSON(h.client.R().SetContext(ctx), "/api/login", req, &out); err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}

	h.SetToken(out.Token)
	return out, nil
}

func (h *httpCatalogAdapter) CreateAuthor(ctx context.Context, req models.CreateAuthorRequest) (models.AuthorCreatedResponse, error) {
	var out models.AuthorCreatedResponse
	if err := h.postJSON(h.authedRequest(ctx), "/api/authors", req, &out); err != nil {
		return models.AuthorCreatedResponse{}, fmt.Errorf("create author request: %w", err)
	}

	return out, nil
}

func (h *httpCatalogAdapter) CreatePublisher(ctx context.Context, req models.CreatePublisherRequest) (models.PublisherCreatedResponse, error) {
	var out models.PublisherCreatedResponse
	if err := h.postJSON(h.authedRequest(ctx), "/api/publishers", req, &out); err != nil {
		return models.PublisherCreatedResponse{}, fmt.Errorf("create publisher request: %w", err)
	}

	return out, nil
}

func (h *httpCatalogAdapter) CreateBook(ctx context.Context, req models.CreateBookRequest) (models.BookCreatedResponse, error) {
	var out models.BookCreatedResponse
	if err := h.postJSON(h.authedRequest(ctx), "/api/books", req, &out); err != nil {
		return models.BookCreatedResponse{}, fmt.Errorf("create book request: %w", err)
	}

	return out, nil
}

func (h *httpCatalogAdapter) ListBooks(ctx context.Context) ([]models.BookListItem, error) {
	var out []models.BookListItem
	if err := h.getJSON(ctx, "/api/books", nil, &out); err != nil {
		return nil, fmt.Errorf("list books request: %w", err)
	}

	return out, nil
}

func (h *httpCatalogAdapter) GetBook(ctx context.Context, bookID int64) (models.BookDetails, error) {
	var out models.BookDetails
	if err := h.getJSON(ctx, "/api/books/"+strconv.FormatInt(bookID, 10), nil, &out); err != nil {
		return models.BookDetails{}, fmt.Errorf("get book request: %w", err)
	}

	return out, nil
}

func (h *httpCatalogAdapter) ListBooksByAuthor(ctx context.Context, authorID int64) ([]models.BookListItem, error) {
	var out []models.BookListItem
	if err := h.getJSON(ctx, "/api/authors/"+strconv.FormatInt(authorID, 10)+"/books", nil, &out); err != nil {
		return nil, fmt.Errorf("list books by author request: %w", err)
	}

	return out, nil
}

func (h *httpCatalogAdapter) ListBooksByPublisher(ctx context.Context, publisherID int64) ([]models.BookListItem, error) {
	var out []models.BookListItem
	if err := h.getJSON(ctx, "/api/publishers/"+strconv.FormatInt(publisherID, 10)+"/books", nil, &out); err != nil {
		return nil, fmt.Errorf("list books by publisher request: %w", err)
	}

	return out, nil
}

func (h *httpCatalogAdapter) SearchBooks(ctx context.Context, title string) ([]models.BookListItem, error) {
	var out []models.BookListItem
	if err := h.getJSON(ctx, "/api/search/books", map[string]string{"title": title}, &out); err != nil {
		return nil, fmt.Errorf("search books request: %w", err)
	}

	return out, nil
}

func (h *httpCatalogAdapter) SearchAuthors(ctx context.Context, name string) ([]models.Author, error) {
	var out []models.Author
	if err := h.getJSON(ctx, "/api/search/authors", map[string]string{"name": name}, &out); err != nil {
		return nil, fmt.Errorf("search authors request: %w", err)
	}

	return out, nil
}

func (h *httpCatalogAdapter) SearchPublishers(ctx context.Context, name string) ([]models.Publisher, error) {
	var out []models.Publisher
	if err := h.getJSON(ctx, "/api/search/publishers", map[string]string{"name": name}, &out); err != nil {
		return nil, fmt.Errorf("search publishers request: %w", err)
	}

	return out, nil
}

func (h *httpCatalogAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (h *httpCatalogAdapter) postJSON(req *resty.Request, path string, body, result any) error {
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return err
	}

	return h.decode(resp, result)
}

func (h *httpCatalogAdapter) getJSON(ctx context.Context, path string, query map[string]string, result any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(path)
	if err != nil {
		return err
	}

	return h.decode(resp, result)
}

func (h *httpCatalogAdapter) decode(resp *resty.Response, result any) error {
	if err := mapHTTPError(resp); err != nil {
		h.logger.Debug().
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Msg("catalog api returned an error")
		return err
	}

	if err := json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
