package models

// Book represents a single catalog entry.
// Review and Genre are optional and serialize as null when absent,
// matching the wire shape expected by existing clients.
type Book struct {
	// ID is the server-assigned unique identifier of the book.
	ID int64 `json:"id"`

	// Title is the unique title of the book.
	Title string `json:"title"`

	// Author is the author of the book.
	Author string `json:"author"`

	// Review is an optional short review, capped at 144 characters.
	Review *string `json:"review"`

	// Genre is an optional genre label.
	Genre *string `json:"genre"`
}

// BookUpdate describes a partial update of a single book.
// A nil field means "leave the stored value untouched"; a non-nil field is
// written as-is, so an empty string explicitly clears a text column.
type BookUpdate struct {
	// ID identifies the book to update.
	ID int64 `json:"-"`

	Title  *string `json:"title"`
	Author *string `json:"author"`
	Review *string `json:"review"`
	Genre  *string `json:"genre"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u BookUpdate) IsEmpty() bool {
	return u.Title == nil && u.Author == nil && u.Review == nil && u.Genre == nil
}

// TableName returns the name of the database table
// associated with the Book model.
func (b Book) TableName() string {
	return "books"
}
