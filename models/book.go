package models

// Book is a catalog entry. PublisherID and AuthorID must reference
// existing rows; the store enforces this with foreign keys.
type Book struct {
	BookID      int64    `json:"id"`
	Title       string   `json:"title"`
	Type        *string  `json:"type"`
	Price       *float64 `json:"price"`
	PublisherID int64    `json:"publisherId"`
	AuthorID    int64    `json:"authorId"`
}

// BookListItem is a book joined with the display names of its author and
// publisher. It is returned by the list and title-search routes.
type BookListItem struct {
	Book
	AuthorName    string `json:"authorName"`
	PublisherName string `json:"publisherName"`
}

// BookDetails is the single-book view. In addition to the list view it
// carries the author's location and the publisher's city.
type BookDetails struct {
	BookListItem
	AuthorCountry *string `json:"authorCountry"`
	AuthorCity    *string `json:"authorCity"`
	PublisherCity *string `json:"publisherCity"`
}
