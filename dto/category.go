package dto

import "blogdeck/models"

type CategoryRequestDTO struct {
	Title string `json:"title" binding:"required" example:"travel tips"`
}

type CategoryResponseDTO struct {
	Message  string          `json:"message" example:"Category created successfully"`
	Category models.Category `json:"category"`
}
