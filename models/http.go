package models

// JSON field names of the request types follow the public API contract,
// which is why they are not camelCase everywhere.

// SignupRequest is the body of POST /api/signup.
type SignupRequest struct {
	Username  string  `json:"Username"`
	Password  string  `json:"password"`
	FirstName *string `json:"FName,omitempty"`
	LastName  *string `json:"LName,omitempty"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"Username"`
	Password string `json:"password"`
}

// CreateAuthorRequest is the body of POST /api/authors.
type CreateAuthorRequest struct {
	FirstName string  `json:"Fname"`
	LastName  string  `json:"Lname"`
	Country   *string `json:"Country,omitempty"`
	City      *string `json:"City,omitempty"`
	Address   *string `json:"Address,omitempty"`
}

// CreatePublisherRequest is the body of POST /api/publishers.
type CreatePublisherRequest struct {
	Name string  `json:"PName"`
	City *string `json:"City,omitempty"`
}

// CreateBookRequest is the body of POST /api/books.
type CreateBookRequest struct {
	Title       string   `json:"Title"`
	Type        *string  `json:"Type,omitempty"`
	Price       *float64 `json:"Price,omitempty"`
	PublisherID int64    `json:"publisherId"`
	AuthorID    int64    `json:"authorId"`
}

// Author converts the request into the persisted model.
func (r CreateAuthorRequest) Author() Author {
	return Author{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Country:   r.Country,
		City:      r.City,
		Address:   r.Address,
	}
}

// Publisher converts the request into the persisted model.
func (r CreatePublisherRequest) Publisher() Publisher {
	return Publisher{
		Name: r.Name,
		City: r.City,
	}
}

// Book converts the request into the persisted model.
func (r CreateBookRequest) Book() Book {
	return Book{
		Title:       r.Title,
		Type:        r.Type,
		Price:       r.Price,
		PublisherID: r.PublisherID,
		AuthorID:    r.AuthorID,
	}
}
