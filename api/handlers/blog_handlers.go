package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"blogdeck/dto"
	"blogdeck/services"
)

// parseDate accepts RFC3339 or a plain calendar date.
func parseDate(s string) (*time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListBlogsHandler godoc
// @Summary      List blogs in a category
// @Description  Optional text search and creation-date range, newest first, paginated.
// @Tags         blogs
// @Param        userId      query  string  true   "Owner ObjectID"
// @Param        categoryId  query  string  true   "Category ObjectID"
// @Param        search      query  string  false  "Case-insensitive match on title or content"
// @Param        startDate   query  string  false  "Inclusive lower bound (RFC3339 or YYYY-MM-DD)"
// @Param        endDate     query  string  false  "Inclusive upper bound (RFC3339 or YYYY-MM-DD)"
// @Param        page        query  int     false  "Page number (1-based)"
// @Param        limit       query  int     false  "Page size"
// @Produce      json
// @Success      200  {object}  dto.BlogListResponseDTO
// @Failure      400  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  dto.MessageResponseDTO
// @Router       /blogs [get]
func ListBlogsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		in := services.ListBlogsInput{
			UserID:     c.Query("userId"),
			CategoryID: c.Query("categoryId"),
			Search:     c.Query("search"),
		}
		in.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		in.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

		if s := c.Query("startDate"); s != "" {
			t, err := parseDate(s)
			if err != nil {
				c.JSON(http.StatusBadRequest, dto.MessageResponseDTO{Message: "Invalid startDate"})
				return
			}
			in.StartDate = t
		}
		if s := c.Query("endDate"); s != "" {
			t, err := parseDate(s)
			if err != nil {
				c.JSON(http.StatusBadRequest, dto.MessageResponseDTO{Message: "Invalid endDate"})
				return
			}
			in.EndDate = t
		}

		page, err := svc.List(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.BlogListResponseDTO{
			Blogs:      page.Blogs,
			TotalBlogs: page.TotalBlogs,
			TotalPages: page.TotalPages,
		})
	}
}

// CreateBlogHandler godoc
// @Summary      Create a blog in a category
// @Tags         blogs
// @Accept       json
// @Param        userId      query  string              true  "Owner ObjectID"
// @Param        categoryId  query  string              true  "Category ObjectID"
// @Param        body        body   dto.BlogRequestDTO  true  "Blog payload"
// @Produce      json
// @Success      201  {object}  dto.BlogResponseDTO
// @Failure      400  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  dto.MessageResponseDTO
// @Failure      409  {object}  dto.MessageResponseDTO
// @Router       /blogs [post]
func CreateBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.BlogRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.MessageResponseDTO{Message: "Title and content are required"})
			return
		}

		blog, err := svc.Create(c.Request.Context(), services.CreateBlogInput{
			UserID:     c.Query("userId"),
			CategoryID: c.Query("categoryId"),
			Title:      req.Title,
			Content:    req.Content,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.BlogResponseDTO{Message: "New blog created", Blog: *blog})
	}
}

// GetBlogHandler godoc
// @Summary      Get a single blog
// @Tags         blogs
// @Param        blog        path   string  true  "Blog ObjectID"
// @Param        userId      query  string  true  "Owner ObjectID"
// @Param        categoryId  query  string  true  "Category ObjectID"
// @Produce      json
// @Success      200  {object}  dto.BlogContentDTO
// @Failure      400  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  dto.MessageResponseDTO
// @Router       /blogs/{blog} [get]
func GetBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		blog, err := svc.Get(c.Request.Context(), c.Query("userId"), c.Query("categoryId"), c.Param("blog"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.BlogContentDTO{Title: blog.Title, Content: blog.Content})
	}
}

// UpdateBlogHandler godoc
// @Summary      Update a blog's title or content
// @Tags         blogs
// @Accept       json
// @Param        blog        path   string              true  "Blog ObjectID"
// @Param        userId      query  string              true  "Owner ObjectID"
// @Param        categoryId  query  string              true  "Category ObjectID"
// @Param        body        body   dto.BlogRequestDTO  true  "Fields to update"
// @Produce      json
// @Success      200  {object}  dto.BlogResponseDTO
// @Failure      400  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  dto.MessageResponseDTO
// @Router       /blogs/{blog} [patch]
func UpdateBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.BlogRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.MessageResponseDTO{Message: "Invalid request body"})
			return
		}

		blog, err := svc.Update(c.Request.Context(), services.UpdateBlogInput{
			UserID:     c.Query("userId"),
			CategoryID: c.Query("categoryId"),
			BlogID:     c.Param("blog"),
			Title:      req.Title,
			Content:    req.Content,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.BlogResponseDTO{Message: "Blog updated", Blog: *blog})
	}
}

// DeleteBlogHandler godoc
// @Summary      Delete a blog
// @Tags         blogs
// @Param        blog        path   string  true  "Blog ObjectID"
// @Param        userId      query  string  true  "Owner ObjectID"
// @Param        categoryId  query  string  true  "Category ObjectID"
// @Produce      json
// @Success      200  {object}  dto.BlogResponseDTO
// @Failure      400  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  dto.MessageResponseDTO
// @Router       /blogs/{blog} [delete]
func DeleteBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		blog, err := svc.Delete(c.Request.Context(), c.Query("userId"), c.Query("categoryId"), c.Param("blog"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.BlogResponseDTO{Message: "Blog deleted", Blog: *blog})
	}
}
