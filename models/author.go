package models

// Author is a book author. First and last name are required, the location
// fields are optional and stored as NULL when absent.
type Author struct {
	AuthorID  int64   `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Country   *string `json:"country"`
	City      *string `json:"city"`
	Address   *string `json:"address"`
}

// FullName joins first and last name the same way the book queries do.
func (a Author) FullName() string {
	return a.FirstName + " " + a.LastName
}
