package repositories

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogdeck/models"
)

type BlogRepository struct {
	col *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{col: db.Collection("blogs")}
}

// FindOwned looks up a blog by id AND owner AND category in one filtered
// query, so existence and the full ownership chain are checked together.
func (r *BlogRepository) FindOwned(ctx context.Context, id, owner, category primitive.ObjectID) (*models.Blog, error) {
	var b models.Blog
	filter := bson.M{"_id": id, "user": owner, "category": category}
	if err := r.col.FindOne(ctx, filter).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// TitleExists reports whether a blog with the given title already exists in
// the owner's category.
func (r *BlogRepository) TitleExists(ctx context.Context, owner, category primitive.ObjectID, title string) (bool, error) {
	filter := bson.M{"title": title, "user": owner, "category": category}
	err := r.col.FindOne(ctx, filter).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return err == nil, err
}

// Insert creates a new blog document and fills in its generated ID.
func (r *BlogRepository) Insert(ctx context.Context, b *models.Blog) error {
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, b)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		b.ID = id
	}
	return nil
}

// Update applies the given field patch and returns the updated document,
// or (nil, nil) when the blog does not exist.
func (r *BlogRepository) Update(ctx context.Context, id primitive.ObjectID, patch bson.M) (*models.Blog, error) {
	set := bson.M{"updatedAt": time.Now()}
	for k, v := range patch {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var b models.Blog
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// Delete removes the blog and returns the deleted document, or (nil, nil)
// when the blog does not exist.
func (r *BlogRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	var b models.Blog
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

type ListBlogsOptions struct {
	Owner     primitive.ObjectID
	Category  primitive.ObjectID
	Search    string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

// buildBlogFilter assembles the listing filter. The base filter always
// constrains owner and category; search adds a case-insensitive OR match on
// title and content; the createdAt range is inclusive on both bounds.
func buildBlogFilter(opt ListBlogsOptions) bson.M {
	filter := bson.M{
		"user":     opt.Owner,
		"category": opt.Category,
	}

	if opt.Search != "" {
		// QuoteMeta keeps user input from being interpreted as a pattern.
		pattern := regexp.QuoteMeta(opt.Search)
		filter["$or"] = []bson.M{
			{"title": primitive.Regex{Pattern: pattern, Options: "i"}},
			{"content": primitive.Regex{Pattern: pattern, Options: "i"}},
		}
	}

	switch {
	case opt.StartDate != nil && opt.EndDate != nil:
		filter["createdAt"] = bson.M{"$gte": *opt.StartDate, "$lte": *opt.EndDate}
	case opt.StartDate != nil:
		filter["createdAt"] = bson.M{"$gte": *opt.StartDate}
	case opt.EndDate != nil:
		filter["createdAt"] = bson.M{"$lte": *opt.EndDate}
	}

	return filter
}

// clampPagination normalizes page and limit to at least 1 and returns
// (skip, limit). Out-of-range values from the query string must never turn
// into a negative skip.
func clampPagination(page, limit int) (int64, int64) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	return int64(page-1) * int64(limit), int64(limit)
}

// List returns one page of blogs matching the filters, newest first, along
// with the total count ignoring pagination.
func (r *BlogRepository) List(ctx context.Context, opt ListBlogsOptions) ([]models.Blog, int64, error) {
	filter := buildBlogFilter(opt)
	skip, limit := clampPagination(opt.Page, opt.Limit)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var blogs []models.Blog
	if err := cur.All(ctx, &blogs); err != nil {
		return nil, 0, err
	}
	return blogs, total, nil
}
