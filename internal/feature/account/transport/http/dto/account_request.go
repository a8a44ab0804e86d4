// Package dto defines data transfer objects for the account feature's HTTP transport layer.
package dto

// CreateAccountReq represents the request body for POST /account.
type CreateAccountReq struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateAccountReq represents the request body for PUT /account/:id.
// Every update carries a password field; it is re-hashed even if unchanged.
type UpdateAccountReq struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
