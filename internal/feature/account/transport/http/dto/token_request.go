package dto

// TokenReq represents the credentials for POST /token and POST /refresh.
// It binds from form data (OAuth2 password flow) or JSON.
type TokenReq struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}
