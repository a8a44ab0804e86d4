// Package dto defines data transfer objects for the novelist feature's HTTP transport layer.
package dto

// CreateNovelistReq represents the request body for POST /novelist.
type CreateNovelistReq struct {
	Name string `json:"name" binding:"required"`
}
