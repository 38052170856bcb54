package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogdeck/dto"
	"blogdeck/services"
)

// GetUsersHandler godoc
// @Summary      Get one user or list all users
// @Description  With userId returns that user's profile; without it returns all users.
// @Tags         users
// @Param        userId  query  string  false  "User ObjectID"
// @Produce      json
// @Success      200  {object}  dto.UserProfileDTO
// @Failure      400  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  dto.MessageResponseDTO
// @Router       /users [get]
func GetUsersHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("userId")
		if userID == "" {
			users, err := svc.List(c.Request.Context())
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, users)
			return
		}

		u, err := svc.Get(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.UserProfileDTO{Username: u.Username, Email: u.Email})
	}
}

// SignUpHandler godoc
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Param        body  body  dto.SignUpRequestDTO  true  "Signup payload"
// @Produce      json
// @Success      201  {object}  dto.UserResponseDTO
// @Failure      400  {object}  dto.MessageResponseDTO
// @Failure      409  {object}  dto.MessageResponseDTO
// @Router       /users [post]
func SignUpHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SignUpRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.MessageResponseDTO{Message: "Username, email and password are required"})
			return
		}

		u, err := svc.SignUp(c.Request.Context(), services.SignUpInput{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.UserResponseDTO{Message: "User created successfully", User: *u})
	}
}

// UpdateUserHandler godoc
// @Summary      Update a user's email, username or password
// @Tags         users
// @Accept       json
// @Param        body  body  dto.UpdateUserRequestDTO  true  "Update payload"
// @Produce      json
// @Success      200  {object}  dto.UserResponseDTO
// @Failure      400  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  dto.MessageResponseDTO
// @Router       /users [patch]
func UpdateUserHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.UpdateUserRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.MessageResponseDTO{Message: "Invalid request body"})
			return
		}
		if req.UserID == "" {
			c.JSON(http.StatusBadRequest, dto.MessageResponseDTO{Message: "User ID is required"})
			return
		}

		u, err := svc.Update(c.Request.Context(), services.UpdateUserInput{
			UserID:      req.UserID,
			NewEmail:    req.NewEmail,
			NewUsername: req.NewUsername,
			NewPassword: req.NewPassword,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.UserResponseDTO{Message: "User updated successfully", User: *u})
	}
}

// DeleteUserHandler godoc
// @Summary      Delete a user
// @Tags         users
// @Param        userId  query  string  true  "User ObjectID"
// @Produce      json
// @Success      200  {object}  dto.UserResponseDTO
// @Failure      400  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  dto.MessageResponseDTO
// @Router       /users [delete]
func DeleteUserHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("userId")
		if userID == "" {
			c.JSON(http.StatusBadRequest, dto.MessageResponseDTO{Message: "User ID is required"})
			return
		}

		u, err := svc.Delete(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.UserResponseDTO{Message: "User deleted successfully", User: *u})
	}
}
