package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blogdeck/models"
	"blogdeck/repositories"
)

// Store interfaces consumed by the services. The repositories package
// implements them against Mongo; tests supply in-memory fakes. All lookups
// return (nil, nil) when no document matches.

type UserStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Insert(ctx context.Context, u *models.User) error
	Update(ctx context.Context, id primitive.ObjectID, patch bson.M) (*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

type CategoryStore interface {
	FindOwned(ctx context.Context, id, owner primitive.ObjectID) (*models.Category, error)
	FindByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Category, error)
	TitleExists(ctx context.Context, owner primitive.ObjectID, title string, exclude *primitive.ObjectID) (bool, error)
	Insert(ctx context.Context, c *models.Category) error
	UpdateTitle(ctx context.Context, id primitive.ObjectID, title string) (*models.Category, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type BlogStore interface {
	FindOwned(ctx context.Context, id, owner, category primitive.ObjectID) (*models.Blog, error)
	TitleExists(ctx context.Context, owner, category primitive.ObjectID, title string) (bool, error)
	Insert(ctx context.Context, b *models.Blog) error
	Update(ctx context.Context, id primitive.ObjectID, patch bson.M) (*models.Blog, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	List(ctx context.Context, opt repositories.ListBlogsOptions) ([]models.Blog, int64, error)
}
