package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-book-keeper/models"
)

const (
	createUser = `INSERT INTO users (username, password)
    VALUES ($1, $2)
    RETURNING id, username, password;`

	findUserByUsername = `SELECT id, username, password
    FROM users
    WHERE username = $1;`

	getAllUsers = `SELECT id, username, password
    FROM users;`

	deleteAllUsers = `DELETE FROM users;`

	deleteUser = `DELETE FROM users
    WHERE id = $1
    RETURNING id, username, password;`

	createBook = `INSERT INTO books (title, author, review, genre)
    VALUES ($1, $2, $3, $4)
    RETURNING id, title, author, review, genre;`

	deleteBook = `DELETE FROM books
    WHERE id = $1;`
)

// bookColumns is the canonical column list for every book SELECT and
// RETURNING clause. Order must match the scan order in repository_book.go.
var bookColumns = []string{"id", "title", "author", "review", "genre"}

// builder produces queries with $N placeholders, which both the pgx and the
// go-sqlite3 drivers accept.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildSelectBooksQuery builds a SELECT over the books table; filter may be
// nil to select every row, or an exact-match condition such as
// sq.Eq{"author": "Herbert"}.
func buildSelectBooksQuery(filter sq.Eq) (string, []any, error) {
	q := builder.Select(bookColumns...).From("books")
	if filter != nil {
		q = q.Where(filter)
	}

	return q.ToSql()
}

// buildSelectBookByIDQuery builds the single-row lookup by primary key.
func buildSelectBookByIDQuery(id int64) (string, []any, error) {
	return builder.Select(bookColumns...).
		From("books").
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildUpdateBookQuery builds a partial UPDATE that sets only the non-nil
// fields of update and returns the full updated row. Returns
// ErrBuildingSQLQuery when update carries no fields, because SQL forbids an
// UPDATE without a SET clause.
func buildUpdateBookQuery(update models.BookUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrBuildingSQLQuery
	}

	q := builder.Update("books")

	if update.Title != nil {
		q = q.Set("title", *update.Title)
	}
	if update.Author != nil {
		q = q.Set("author", *update.Author)
	}
	if update.Review != nil {
		q = q.Set("review", *update.Review)
	}
	if update.Genre != nil {
		q = q.Set("genre", *update.Genre)
	}

	return q.Where(sq.Eq{"id": update.ID}).
		Suffix("RETURNING id, title, author, review, genre").
		ToSql()
}
