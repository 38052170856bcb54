package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogdeck/dto"
	"blogdeck/services"
)

// GetCategoriesHandler godoc
// @Summary      Get one category or list the user's categories
// @Tags         categories
// @Param        userId      query  string  true   "Owner ObjectID"
// @Param        categoryId  query  string  false  "Category ObjectID"
// @Produce      json
// @Success      200  {object}  models.Category
// @Failure      400  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  dto.MessageResponseDTO
// @Router       /categories [get]
func GetCategoriesHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("userId")
		categoryID := c.Query("categoryId")

		if categoryID != "" {
			category, err := svc.Get(c.Request.Context(), userID, categoryID)
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, category)
			return
		}

		categories, err := svc.List(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// CreateCategoryHandler godoc
// @Summary      Create a category
// @Description  The title is normalized before it is stored and must be unique per owner.
// @Tags         categories
// @Accept       json
// @Param        userId  query  string                  true  "Owner ObjectID"
// @Param        body    body   dto.CategoryRequestDTO  true  "Category payload"
// @Produce      json
// @Success      201  {object}  dto.CategoryResponseDTO
// @Failure      400  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  dto.MessageResponseDTO
// @Failure      409  {object}  dto.MessageResponseDTO
// @Router       /categories [post]
func CreateCategoryHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CategoryRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.MessageResponseDTO{Message: "Title is required"})
			return
		}

		category, err := svc.Create(c.Request.Context(), c.Query("userId"), req.Title)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.CategoryResponseDTO{Message: "Category created successfully", Category: *category})
	}
}

// UpdateCategoryHandler godoc
// @Summary      Rename a category
// @Tags         categories
// @Accept       json
// @Param        category  path   string                  true  "Category ObjectID"
// @Param        userId    query  string                  true  "Owner ObjectID"
// @Param        body      body   dto.CategoryRequestDTO  true  "Category payload"
// @Produce      json
// @Success      200  {object}  dto.CategoryResponseDTO
// @Failure      400  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  dto.MessageResponseDTO
// @Failure      409  {object}  dto.MessageResponseDTO
// @Router       /categories/{category} [patch]
func UpdateCategoryHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CategoryRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.MessageResponseDTO{Message: "Title is required"})
			return
		}

		category, err := svc.Update(c.Request.Context(), c.Query("userId"), c.Param("category"), req.Title)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.CategoryResponseDTO{Message: "Category updated successfully", Category: *category})
	}
}

// DeleteCategoryHandler godoc
// @Summary      Delete a category
// @Tags         categories
// @Param        category  path   string  true  "Category ObjectID"
// @Param        userId    query  string  true  "Owner ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  dto.MessageResponseDTO
// @Router       /categories/{category} [delete]
func DeleteCategoryHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Query("userId"), c.Param("category")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "Category deleted successfully"})
	}
}
