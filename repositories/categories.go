package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogdeck/models"
)

type CategoryRepository struct {
	col *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{col: db.Collection("categories")}
}

// FindOwned looks up a category by id AND owner in a single filtered query.
// A category owned by another user resolves to (nil, nil), indistinguishable
// from one that does not exist.
func (r *CategoryRepository) FindOwned(ctx context.Context, id, owner primitive.ObjectID) (*models.Category, error) {
	var c models.Category
	if err := r.col.FindOne(ctx, bson.M{"_id": id, "user": owner}).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// FindByOwner returns all categories owned by the user.
func (r *CategoryRepository) FindByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Category, error) {
	cur, err := r.col.Find(ctx, bson.M{"user": owner})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var cats []models.Category
	if err := cur.All(ctx, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// TitleExists reports whether the owner already has a category with the given
// normalized title. exclude, when non-nil, skips the category being updated so
// it does not collide with itself.
func (r *CategoryRepository) TitleExists(ctx context.Context, owner primitive.ObjectID, title string, exclude *primitive.ObjectID) (bool, error) {
	filter := bson.M{"title": title, "user": owner}
	if exclude != nil {
		filter["_id"] = bson.M{"$ne": *exclude}
	}

	err := r.col.FindOne(ctx, filter).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return err == nil, err
}

// Insert creates a new category document and fills in its generated ID.
func (r *CategoryRepository) Insert(ctx context.Context, c *models.Category) error {
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = id
	}
	return nil
}

// UpdateTitle sets a new title and returns the updated document, or
// (nil, nil) when the category does not exist.
func (r *CategoryRepository) UpdateTitle(ctx context.Context, id primitive.ObjectID, title string) (*models.Category, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"title": title, "updatedAt": time.Now()}}

	var c models.Category
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Delete removes the category by id.
func (r *CategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
