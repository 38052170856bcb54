package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"blogdeck/api/handlers"
	"blogdeck/api/middleware"
	"blogdeck/auth"
	"blogdeck/db"
	_ "blogdeck/docs"
	"blogdeck/services"
)

// Deps carries the wired services the router needs.
type Deps struct {
	Users      *services.UserService
	Categories *services.CategoryService
	Blogs      *services.BlogService
	Tokens     *auth.JWTManager
}

func New(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogging())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if client := db.Client(); client != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
			defer cancel()
			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes. Signup and login stay public; everything else sits behind
	// the token gate.
	api := r.Group("/api/v1")
	{
		api.POST("/auth/login", handlers.LoginHandler(d.Users))
		api.POST("/users", handlers.SignUpHandler(d.Users))

		protected := api.Group("", middleware.AuthGate(d.Tokens))
		{
			protected.GET("/users", handlers.GetUsersHandler(d.Users))
			protected.PATCH("/users", handlers.UpdateUserHandler(d.Users))
			protected.DELETE("/users", handlers.DeleteUserHandler(d.Users))

			protected.GET("/categories", handlers.GetCategoriesHandler(d.Categories))
			protected.POST("/categories", handlers.CreateCategoryHandler(d.Categories))
			protected.PATCH("/categories/:category", handlers.UpdateCategoryHandler(d.Categories))
			protected.DELETE("/categories/:category", handlers.DeleteCategoryHandler(d.Categories))

			protected.GET("/blogs", handlers.ListBlogsHandler(d.Blogs))
			protected.POST("/blogs", handlers.CreateBlogHandler(d.Blogs))
			protected.GET("/blogs/:blog", handlers.GetBlogHandler(d.Blogs))
			protected.PATCH("/blogs/:blog", handlers.UpdateBlogHandler(d.Blogs))
			protected.DELETE("/blogs/:blog", handlers.DeleteBlogHandler(d.Blogs))
		}
	}

	return r
}
