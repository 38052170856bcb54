package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"blogdeck/models"
	"blogdeck/repositories"
)

// In-memory stores mirroring the repository contracts, including the
// (nil, nil) not-found convention and duplicate-key errors on unique
// violations.

func duplicateKeyErr() error {
	return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
}

type fakeUserStore struct {
	users []*models.User
}

func (f *fakeUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) List(context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserStore) Insert(_ context.Context, u *models.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email || existing.Username == u.Username {
			return duplicateKeyErr()
		}
	}
	u.ID = primitive.NewObjectID()
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	cp := *u
	f.users = append(f.users, &cp)
	return nil
}

func (f *fakeUserStore) Update(_ context.Context, id primitive.ObjectID, patch bson.M) (*models.User, error) {
	for _, u := range f.users {
		if u.ID != id {
			continue
		}
		if v, ok := patch["email"].(string); ok {
			u.Email = v
		}
		if v, ok := patch["username"].(string); ok {
			u.Username = v
		}
		if v, ok := patch["password"].(string); ok {
			u.Password = v
		}
		u.UpdatedAt = time.Now()
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserStore) Delete(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return u, nil
		}
	}
	return nil, nil
}

type fakeCategoryStore struct {
	categories []*models.Category
}

func (f *fakeCategoryStore) FindOwned(_ context.Context, id, owner primitive.ObjectID) (*models.Category, error) {
	for _, c := range f.categories {
		if c.ID == id && c.User == owner {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryStore) FindByOwner(_ context.Context, owner primitive.ObjectID) ([]models.Category, error) {
	var out []models.Category
	for _, c := range f.categories {
		if c.User == owner {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCategoryStore) TitleExists(_ context.Context, owner primitive.ObjectID, title string, exclude *primitive.ObjectID) (bool, error) {
	for _, c := range f.categories {
		if c.User == owner && c.Title == title {
			if exclude != nil && c.ID == *exclude {
				continue
			}
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryStore) Insert(_ context.Context, c *models.Category) error {
	for _, existing := range f.categories {
		if existing.User == c.User && existing.Title == c.Title {
			return duplicateKeyErr()
		}
	}
	c.ID = primitive.NewObjectID()
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	cp := *c
	f.categories = append(f.categories, &cp)
	return nil
}

func (f *fakeCategoryStore) UpdateTitle(_ context.Context, id primitive.ObjectID, title string) (*models.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			c.Title = title
			c.UpdatedAt = time.Now()
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryStore) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, c := range f.categories {
		if c.ID == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeBlogStore struct {
	blogs []*models.Blog
}

func (f *fakeBlogStore) FindOwned(_ context.Context, id, owner, category primitive.ObjectID) (*models.Blog, error) {
	for _, b := range f.blogs {
		if b.ID == id && b.User == owner && b.Category == category {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeBlogStore) TitleExists(_ context.Context, owner, category primitive.ObjectID, title string) (bool, error) {
	for _, b := range f.blogs {
		if b.User == owner && b.Category == category && b.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBlogStore) Insert(_ context.Context, b *models.Blog) error {
	for _, existing := range f.blogs {
		if existing.User == b.User && existing.Category == b.Category && existing.Title == b.Title {
			return duplicateKeyErr()
		}
	}
	b.ID = primitive.NewObjectID()
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
	cp := *b
	f.blogs = append(f.blogs, &cp)
	return nil
}

func (f *fakeBlogStore) Update(_ context.Context, id primitive.ObjectID, patch bson.M) (*models.Blog, error) {
	for _, b := range f.blogs {
		if b.ID != id {
			continue
		}
		if v, ok := patch["title"].(string); ok {
			b.Title = v
		}
		if v, ok := patch["content"].(string); ok {
			b.Content = v
		}
		b.UpdatedAt = time.Now()
		cp := *b
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeBlogStore) Delete(_ context.Context, id primitive.ObjectID) (*models.Blog, error) {
	for i, b := range f.blogs {
		if b.ID == id {
			f.blogs = append(f.blogs[:i], f.blogs[i+1:]...)
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBlogStore) List(_ context.Context, opt repositories.ListBlogsOptions) ([]models.Blog, int64, error) {
	var matched []models.Blog
	for _, b := range f.blogs {
		if b.User != opt.Owner || b.Category != opt.Category {
			continue
		}
		if opt.Search != "" {
			needle := strings.ToLower(opt.Search)
			if !strings.Contains(strings.ToLower(b.Title), needle) &&
				!strings.Contains(strings.ToLower(b.Content), needle) {
				continue
			}
		}
		if opt.StartDate != nil && b.CreatedAt.Before(*opt.StartDate) {
			continue
		}
		if opt.EndDate != nil && b.CreatedAt.After(*opt.EndDate) {
			continue
		}
		matched = append(matched, *b)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	page, limit := opt.Page, opt.Limit
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	skip := (page - 1) * limit
	if skip >= len(matched) {
		return nil, total, nil
	}
	end := skip + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], total, nil
}
