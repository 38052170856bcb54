package dto

import "blogdeck/models"

type BlogRequestDTO struct {
	Title   string `json:"title" example:"First Trip"`
	Content string `json:"content" example:"Pack light."`
}

type BlogResponseDTO struct {
	Message string      `json:"message" example:"New blog created"`
	Blog    models.Blog `json:"blog"`
}

// BlogContentDTO is the single-blog read shape.
type BlogContentDTO struct {
	Title   string `json:"title" example:"First Trip"`
	Content string `json:"content" example:"Pack light."`
}

// BlogListResponseDTO carries one page plus the totals computed over the
// whole filtered set.
type BlogListResponseDTO struct {
	Blogs      []models.Blog `json:"blogs"`
	TotalBlogs int64         `json:"totalBlogs" example:"12"`
	TotalPages int           `json:"totalPages" example:"3"`
}
