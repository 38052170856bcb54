package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blogdeck/models"
)

// Field names reported by InvalidIDError.
const (
	FieldUserID     = "user ID"
	FieldCategoryID = "category ID"
	FieldBlogID     = "blog ID"
)

// ParseID validates the identifier format for the named field and converts
// it. Empty strings and non-ObjectID strings both fail, so malformed input is
// rejected before any lookup.
func ParseID(field, s string) (primitive.ObjectID, error) {
	if s == "" || !primitive.IsValidObjectID(s) {
		return primitive.NilObjectID, &InvalidIDError{Field: field}
	}
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, &InvalidIDError{Field: field}
	}
	return id, nil
}

// Chain holds the entities resolved along the owner chain so callers avoid
// redundant lookups.
type Chain struct {
	User     *models.User
	Category *models.Category
	Blog     *models.Blog
}

// Ownership validates the User -> Category -> Blog containment relationship.
// Category and blog lookups filter by owner in the same query, so "exists but
// belongs to someone else" is indistinguishable from "does not exist" and
// cross-tenant existence never leaks.
type Ownership struct {
	users      UserStore
	categories CategoryStore
	blogs      BlogStore
}

func NewOwnership(users UserStore, categories CategoryStore, blogs BlogStore) *Ownership {
	return &Ownership{users: users, categories: categories, blogs: blogs}
}

// Resolve checks every link of the chain for the ids supplied. categoryID and
// blogID may be empty to skip those links; a blogID requires a categoryID.
// All identifier formats are validated before the first lookup.
func (o *Ownership) Resolve(ctx context.Context, userID, categoryID, blogID string) (*Chain, error) {
	uid, err := ParseID(FieldUserID, userID)
	if err != nil {
		return nil, err
	}

	var cid, bid primitive.ObjectID
	if categoryID != "" || blogID != "" {
		if cid, err = ParseID(FieldCategoryID, categoryID); err != nil {
			return nil, err
		}
	}
	if blogID != "" {
		if bid, err = ParseID(FieldBlogID, blogID); err != nil {
			return nil, err
		}
	}

	chain := &Chain{}

	chain.User, err = o.users.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if chain.User == nil {
		return nil, ErrUserNotFound
	}

	if categoryID == "" && blogID == "" {
		return chain, nil
	}

	chain.Category, err = o.categories.FindOwned(ctx, cid, uid)
	if err != nil {
		return nil, err
	}
	if chain.Category == nil {
		return nil, ErrCategoryNotFound
	}

	if blogID == "" {
		return chain, nil
	}

	chain.Blog, err = o.blogs.FindOwned(ctx, bid, uid, cid)
	if err != nil {
		return nil, err
	}
	if chain.Blog == nil {
		return nil, ErrBlogNotFound
	}

	return chain, nil
}
