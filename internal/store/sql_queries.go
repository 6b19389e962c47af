package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-library-catalog/internal/config"
	"github.com/MKhiriev/go-library-catalog/models"
)

var (
	userColumns      = []string{"id", "username", "password_hash", "role", "first_name", "last_name", "created_at"}
	authorColumns    = []string{"id", "first_name", "last_name", "country", "city", "address"}
	publisherColumns = []string{"id", "name", "city"}
	bookListColumns  = []string{
		"b.id", "b.title", "b.type", "b.price", "b.publisher_id", "b.author_id",
		"a.first_name || ' ' || a.last_name AS author_name",
		"p.name AS publisher_name",
	}
	bookDetailColumns = append(append([]string{}, bookListColumns...),
		"a.country", "a.city", "p.city AS publisher_city",
	)
)

// likeEscaper escapes the LIKE wildcards of a user supplied fragment so it
// is matched literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns fragment into a "%fragment%" LIKE pattern.
func containsPattern(fragment string) string {
	return "%" + likeEscaper.Replace(fragment) + "%"
}

// iLike is a case-insensitive LIKE usable by both PostgreSQL and SQLite.
func iLike(column, fragment string) sq.Sqlizer {
	return sq.Expr("LOWER("+column+") LIKE LOWER(?) ESCAPE '\\'", containsPattern(fragment))
}

// queryBuilder builds every statement of the store with the placeholder
// format of the configured dialect.
type queryBuilder struct {
	sb sq.StatementBuilderType
}

func newQueryBuilder(driver string) *queryBuilder {
	var placeholder sq.PlaceholderFormat = sq.Dollar
	if driver == config.DriverSQLite {
		placeholder = sq.Question
	}

	return &queryBuilder{sb: sq.StatementBuilder.PlaceholderFormat(placeholder)}
}

func (q *queryBuilder) createUser(user models.User) (string, []any, error) {
	return q.sb.Insert("users").
		Columns("username", "password_hash", "role", "first_name", "last_name").
		Values(user.Username, user.PasswordHash, string(user.Role), user.FirstName, user.LastName).
		Suffix("RETURNING id").
		ToSql()
}

func (q *queryBuilder) findUserByUsername(username string) (string, []any, error) {
	return q.sb.Select(userColumns...).
		From("users").
		Where(sq.Eq{"username": username}).
		ToSql()
}

func (q *queryBuilder) findUserByID(userID int64) (string, []any, error) {
	return q.sb.Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func (q *queryBuilder) updateUserRole(username string, role models.Role) (string, []any, error) {
	return q.sb.Update("users").
		Set("role", string(role)).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func (q *queryBuilder) createAuthor(author models.Author) (string, []any, error) {
	return q.sb.Insert("authors").
		Columns("first_name", "last_name", "country", "city", "address").
		Values(author.FirstName, author.LastName, author.Country, author.City, author.Address).
		Suffix("RETURNING id").
		ToSql()
}

func (q *queryBuilder) searchAuthors(fragment string) (string, []any, error) {
	return q.sb.Select(authorColumns...).
		From("authors").
		Where(sq.Or{iLike("first_name", fragment), iLike("last_name", fragment)}).
		OrderBy("id").
		ToSql()
}

func (q *queryBuilder) createPublisher(publisher models.Publisher) (string, []any, error) {
	return q.sb.Insert("publishers").
		Columns("name", "city").
		Values(publisher.Name, publisher.City).
		Suffix("RETURNING id").
		ToSql()
}

func (q *queryBuilder) searchPublishers(fragment string) (string, []any, error) {
	return q.sb.Select(publisherColumns...).
		From("publishers").
		Where(iLike("name", fragment)).
		OrderBy("id").
		ToSql()
}

func (q *queryBuilder) createBook(book models.Book) (string, []any, error) {
	return q.sb.Insert("books").
		Columns("title", "type", "price", "publisher_id", "author_id").
		Values(book.Title, book.Type, book.Price, book.PublisherID, book.AuthorID).
		Suffix("RETURNING id").
		ToSql()
}

// booksJoined selects books joined with their author and publisher.
func (q *queryBuilder) booksJoined(columns []string) sq.SelectBuilder {
	return q.sb.Select(columns...).
		From("books b").
		Join("authors a ON a.id = b.author_id").
		Join("publishers p ON p.id = b.publisher_id")
}

func (q *queryBuilder) listBooks() (string, []any, error) {
	return q.booksJoined(bookListColumns).
		OrderBy("b.id").
		ToSql()
}

func (q *queryBuilder) getBookByID(bookID int64) (string, []any, error) {
	return q.booksJoined(bookDetailColumns).
		Where(sq.Eq{"b.id": bookID}).
		ToSql()
}

func (q *queryBuilder) searchBooksByTitle(fragment string) (string, []any, error) {
	return q.booksJoined(bookListColumns).
		Where(iLike("b.title", fragment)).
		OrderBy("b.id").
		ToSql()
}

func (q *queryBuilder) listBooksByAuthor(authorID int64) (string, []any, error) {
	return q.booksJoined(bookListColumns).
		Where(sq.Eq{"b.author_id": authorID}).
		OrderBy("b.id").
		ToSql()
}

func (q *queryBuilder) listBooksByPublisher(publisherID int64) (string, []any, error) {
	return q.booksJoined(bookListColumns).
		Where(sq.Eq{"b.publisher_id": publisherID}).
		OrderBy("b.id").
		ToSql()
}
