package dto

// MessageResponseDTO is the common envelope for plain-message responses,
// including every error response.
type MessageResponseDTO struct {
	Message string `json:"message" example:"Category created successfully"`
}
