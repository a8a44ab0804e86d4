// Package dto defines data transfer objects for the book feature's HTTP transport layer.
package dto

// CreateBookReq represents the request body for POST /book.
type CreateBookReq struct {
	Title       string `json:"title" binding:"required"`
	AuthorID    uint   `json:"author_id" binding:"required"`
	PublishYear int    `json:"publish_year" binding:"required"`
}
