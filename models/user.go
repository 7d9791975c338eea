package models

// User represents an account entity used for signup and credential
// verification. The Password field always carries a bcrypt hash at the
// persistence layer; plaintext passwords exist only inside a request body.
type User struct {
	// ID is the server-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique login identifier of the user.
	Username string `json:"username"`

	// Password stores the bcrypt hash of the user's password.
	// MUST never contain plaintext once the record has been persisted.
	Password string `json:"password"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
