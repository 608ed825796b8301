package dto

// RegisterRequest represents the request body for issuing an API key.
type RegisterRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// APIKeyResponse carries the freshly issued API key.
// This is the only time the key is ever revealed.
type APIKeyResponse struct {
	APIKey string `json:"api_key"`
}
