package models

// MessageResponse is the body of every error response and of responses
// that carry nothing but a status message.
type MessageResponse struct {
	Message string `json:"message"`
}

// SignupResponse is returned by POST /api/signup.
type SignupResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// LoginResponse is returned by POST /api/login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// AuthorCreatedResponse is returned by POST /api/authors.
type AuthorCreatedResponse struct {
	Message  string `json:"message"`
	AuthorID int64  `json:"authorId"`
}

// PublisherCreatedResponse is returned by POST /api/publishers.
type PublisherCreatedResponse struct {
	Message     string `json:"message"`
	PublisherID int64  `json:"publisherId"`
}

// BookCreatedResponse is returned by POST /api/books.
type BookCreatedResponse struct {
	Message string `json:"message"`
	BookID  int64  `json:"bookId"`
}
