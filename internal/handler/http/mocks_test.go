package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-library-catalog/internal/config"
	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/internal/service"
	"github.com/MKhiriev/go-library-catalog/models"
)

// ─────────────────────────────────────────────
// Service mocks. Each method field can be overridden per test case; an
// unset field panics so an unexpected call fails the test loudly.
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, request models.SignupRequest) (models.User, error)
	loginFn        func(ctx context.Context, request models.LoginRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	getUserRoleFn  func(ctx context.Context, userID int64) (models.Role, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, request models.SignupRequest) (models.User, error) {
	return m.registerUserFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) GetUserRole(ctx context.Context, userID int64) (models.Role, error) {
	return m.getUserRoleFn(ctx, userID)
}

type mockAuthorService struct {
	createAuthorFn  func(ctx context.Context, request models.CreateAuthorRequest) (int64, error)
	searchAuthorsFn func(ctx context.Context, name string) ([]models.Author, error)
}

func (m *mockAuthorService) CreateAuthor(ctx context.Context, request models.CreateAuthorRequest) (int64, error) {
	return m.createAuthorFn(ctx, request)
}

func (m *mockAuthorService) SearchAuthors(ctx context.Context, name string) ([]models.Author, error) {
	return m.searchAuthorsFn(ctx, name)
}

type mockPublisherService struct {
	createPublisherFn  func(ctx context.Context, request models.CreatePublisherRequest) (int64, error)
	searchPublishersFn func(ctx context.Context, name string) ([]models.Publisher, error)
}

func (m *mockPublisherService) CreatePublisher(ctx context.Context, request models.CreatePublisherRequest) (int64, error) {
	return m.createPublisherFn(ctx, request)
}

func (m *mockPublisherService) SearchPublishers(ctx context.Context, name string) ([]models.Publisher, error) {
	return m.searchPublishersFn(ctx, name)
}

type mockBookService struct {
	createBookFn           func(ctx context.Context, request models.CreateBookRequest) (int64, error)
	listBooksFn            func(ctx context.Context) ([]models.BookListItem, error)
	getBookFn              func(ctx context.Context, bookID int64) (models.BookDetails, error)
	searchBooksFn          func(ctx context.Context, title string) ([]models.BookListItem, error)
	listBooksByAuthorFn    func(ctx context.Context, authorID int64) ([]models.BookListItem, error)
	listBooksByPublisherFn func(ctx context.Context, publisherID int64) ([]models.BookListItem, error)
}

func (m *mockBookService) CreateBook(ctx context.Context, request models.CreateBookRequest) (int64, error) {
	return m.createBookFn(ctx, request)
}

func (m *mockBookService) ListBooks(ctx context.Context) ([]models.BookListItem, error) {
	return m.listBooksFn(ctx)
}

func (m *mockBookService) GetBook(ctx context.Context, bookID int64) (models.BookDetails, error) {
	return m.getBookFn(ctx, bookID)
}

func (m *mockBookService) SearchBooks(ctx context.Context, title string) ([]models.BookListItem, error) {
	return m.searchBooksFn(ctx, title)
}

func (m *mockBookService) ListBooksByAuthor(ctx context.Context, authorID int64) ([]models.BookListItem, error) {
	return m.listBooksByAuthorFn(ctx, authorID)
}

func (m *mockBookService) ListBooksByPublisher(ctx context.Context, publisherID int64) ([]models.BookListItem, error) {
	return m.listBooksByPublisherFn(ctx, publisherID)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var testServerConfig = config.Server{CORSAllowedOrigins: []string{"*"}}

// newTestHandler builds a Handler around services; nil fields are filled
// with empty mocks.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	if services == nil {
		services = &service.Services{}
	}
	if services.AuthService == nil {
		services.AuthService = &mockAuthService{}
	}
	if services.AuthorService == nil {
		services.AuthorService = &mockAuthorService{}
	}
	if services.PublisherService == nil {
		services.PublisherService = &mockPublisherService{}
	}
	if services.BookService == nil {
		services.BookService = &mockBookService{}
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &mockAppInfoService{version: "test-version"}
	}
	return NewHandler(services, testServerConfig, logger.Nop())
}

// adminAuth accepts the token "admin-token" as user 1 with role admin and
// "user-token" as user 2 with role user.
func adminAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			switch tokenString {
			case "admin-token":
				return models.Token{UserID: 1, Username: "admin"}, nil
			case "user-token":
				return models.Token{UserID: 2, Username: "reader"}, nil
			}
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
		getUserRoleFn: func(_ context.Context, userID int64) (models.Role, error) {
			if userID == 1 {
				return models.RoleAdmin, nil
			}
			return models.RoleUser, nil
		},
	}
}

func testRestrictedCORS() config.Server {
	return config.Server{CORSAllowedOrigins: []string{"http://frontend.example"}}
}

// serveWithHeader sends a request through router with an optional
// Authorization header.
func serveWithHeader(router http.Handler, method, target, body, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
