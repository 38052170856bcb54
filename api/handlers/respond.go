package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogdeck/dto"
	"blogdeck/internal/logger"
	"blogdeck/services"
)

// respondError maps service errors onto status codes and messages. The first
// failing check wins; unexpected failures are logged and reported with a
// generic message so internal error text never reaches the client.
func respondError(c *gin.Context, err error) {
	var invalidID *services.InvalidIDError

	switch {
	case errors.As(err, &invalidID):
		c.JSON(http.StatusBadRequest, dto.MessageResponseDTO{Message: "Invalid or missing " + invalidID.Field})
	case errors.Is(err, services.ErrTitleRequired):
		c.JSON(http.StatusBadRequest, dto.MessageResponseDTO{Message: "Title is required"})
	case errors.Is(err, services.ErrBlogFieldsRequired):
		c.JSON(http.StatusBadRequest, dto.MessageResponseDTO{Message: "Title and content are required"})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.MessageResponseDTO{Message: "User not found"})
	case errors.Is(err, services.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, dto.MessageResponseDTO{Message: "Category not found"})
	case errors.Is(err, services.ErrBlogNotFound):
		c.JSON(http.StatusNotFound, dto.MessageResponseDTO{Message: "Blog not found"})
	case errors.Is(err, services.ErrUserExists):
		c.JSON(http.StatusConflict, dto.MessageResponseDTO{Message: "User already exists"})
	case errors.Is(err, services.ErrCategoryExists):
		c.JSON(http.StatusConflict, dto.MessageResponseDTO{Message: "Category already exists"})
	case errors.Is(err, services.ErrCategoryTitleTaken):
		c.JSON(http.StatusConflict, dto.MessageResponseDTO{Message: "Category with this title already exists"})
	case errors.Is(err, services.ErrBlogExists):
		c.JSON(http.StatusConflict, dto.MessageResponseDTO{Message: "Blog already exists"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.MessageResponseDTO{Message: "Invalid email or password"})
	default:
		logger.ErrorWithFields("request failed", logger.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"error":  err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.MessageResponseDTO{Message: "Internal server error"})
	}
}
