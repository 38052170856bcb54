package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogdeck/dto"
	"blogdeck/services"
)

// LoginHandler godoc
// @Summary      Exchange credentials for an API token
// @Tags         auth
// @Accept       json
// @Param        body  body  dto.LoginRequestDTO  true  "Credentials"
// @Produce      json
// @Success      200  {object}  dto.LoginResponseDTO
// @Failure      400  {object}  dto.MessageResponseDTO
// @Failure      401  {object}  dto.MessageResponseDTO
// @Router       /auth/login [post]
func LoginHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.LoginRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.MessageResponseDTO{Message: "Email and password are required"})
			return
		}

		token, _, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.LoginResponseDTO{Message: "Login successful", Token: token})
	}
}
