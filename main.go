package main

import (
	"context"
	"log"
	"net/http"

	"github.com/rs/cors"

	"blogdeck/api/router"
	"blogdeck/auth"
	"blogdeck/config"
	"blogdeck/db"
	"blogdeck/internal/logger"
	"blogdeck/repositories"
	"blogdeck/services"
)

// @title           Blogdeck API
// @version         1.0
// @description     Multi-tenant blogging API: users own categories, categories own blogs
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	if err := db.Init(context.Background()); err != nil {
		log.Fatal(err)
	}

	userRepo := repositories.NewUserRepository(db.Database())
	categoryRepo := repositories.NewCategoryRepository(db.Database())
	blogRepo := repositories.NewBlogRepository(db.Database())

	hasher := auth.NewPasswordHasher(cfg.Bcrypt.Cost)
	tokens, err := auth.NewJWTManager(cfg)
	if err != nil {
		log.Fatal(err)
	}

	owned := services.NewOwnership(userRepo, categoryRepo, blogRepo)
	r := router.New(router.Deps{
		Users:      services.NewUserService(userRepo, hasher, tokens),
		Categories: services.NewCategoryService(owned, categoryRepo),
		Blogs:      services.NewBlogService(owned, blogRepo),
		Tokens:     tokens,
	})

	handler := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	srv := &http.Server{Addr: cfg.Server.Addr, Handler: handler}
	logger.InfoWithFields("server listening", logger.Fields{"addr": cfg.Server.Addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
