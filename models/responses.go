package models

// MessageResponse is the envelope for every acknowledgment the API returns
// after a successful mutation ("Congrats, you've signed up!", delete
// confirmations, and so on).
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the envelope for every error payload the API returns.
// The text is descriptive and safe to show to a caller.
type ErrorResponse struct {
	Error string `json:"error"`
}
