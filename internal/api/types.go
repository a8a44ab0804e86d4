// Package api defines the response envelopes shared by every handler.
package api

// ErrorResponse is the error envelope returned on any failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse is the confirmation envelope for operations whose result
// is a human-readable message (deletions, health checks).
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AccountResponse is the public representation of an account.
// The password hash is never serialized.
type AccountResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthorResponse is the public representation of an author.
type AuthorResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// NovelistResponse is the public representation of a novelist.
type NovelistResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// BookResponse is the public representation of a book.
type BookResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	AuthorID    uint   `json:"author_id"`
	PublishYear int    `json:"publish_year"`
}
