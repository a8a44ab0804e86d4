// Package dto defines data transfer objects for the author feature's HTTP transport layer.
package dto

// CreateAuthorReq represents the request body for POST /author.
type CreateAuthorReq struct {
	Name string `json:"name" binding:"required"`
}
