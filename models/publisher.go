package models

// Publisher is a book publisher.
type Publisher struct {
	PublisherID int64   `json:"id"`
	Name        string  `json:"name"`
	City        *string `json:"city"`
}
