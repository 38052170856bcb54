package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"blogdeck/models"
	"blogdeck/repositories"
)

// BlogService handles blog CRUD and the filtered, paginated listing.
type BlogService struct {
	owner *Ownership
	blogs BlogStore
}

func NewBlogService(owner *Ownership, blogs BlogStore) *BlogService {
	return &BlogService{owner: owner, blogs: blogs}
}

type CreateBlogInput struct {
	UserID     string
	CategoryID string
	Title      string
	Content    string
}

// Create inserts a blog under the user's category. Title and content are
// required; the per-category duplicate check is a fast path backed by the
// unique index.
func (s *BlogService) Create(ctx context.Context, in CreateBlogInput) (*models.Blog, error) {
	chain, err := s.owner.Resolve(ctx, in.UserID, in.CategoryID, "")
	if err != nil {
		return nil, err
	}

	if in.Title == "" || in.Content == "" {
		return nil, ErrBlogFieldsRequired
	}

	exists, err := s.blogs.TitleExists(ctx, chain.User.ID, chain.Category.ID, in.Title)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrBlogExists
	}

	b := &models.Blog{
		Title:    in.Title,
		Content:  in.Content,
		User:     chain.User.ID,
		Category: chain.Category.ID,
	}
	if err := s.blogs.Insert(ctx, b); err != nil {
		if repositories.IsDuplicate(err) {
			return nil, ErrBlogExists
		}
		return nil, err
	}
	return b, nil
}

// Get resolves the full chain and returns the blog.
func (s *BlogService) Get(ctx context.Context, userID, categoryID, blogID string) (*models.Blog, error) {
	chain, err := s.owner.Resolve(ctx, userID, categoryID, blogID)
	if err != nil {
		return nil, err
	}
	return chain.Blog, nil
}

type ListBlogsInput struct {
	UserID     string
	CategoryID string
	Search     string
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	Limit      int
}

type BlogPage struct {
	Blogs      []models.Blog
	TotalBlogs int64
	TotalPages int
}

// List returns one page of the user's blogs in the category, newest first.
// TotalPages is computed against the clamped limit so a non-positive limit
// from the query string cannot divide by zero.
func (s *BlogService) List(ctx context.Context, in ListBlogsInput) (*BlogPage, error) {
	chain, err := s.owner.Resolve(ctx, in.UserID, in.CategoryID, "")
	if err != nil {
		return nil, err
	}

	if in.Page <= 0 {
		in.Page = 1
	}
	if in.Limit <= 0 {
		in.Limit = 10
	}

	blogs, total, err := s.blogs.List(ctx, repositories.ListBlogsOptions{
		Owner:     chain.User.ID,
		Category:  chain.Category.ID,
		Search:    in.Search,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Page:      in.Page,
		Limit:     in.Limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(in.Limit) - 1) / int64(in.Limit))
	return &BlogPage{Blogs: blogs, TotalBlogs: total, TotalPages: totalPages}, nil
}

type UpdateBlogInput struct {
	UserID     string
	CategoryID string
	BlogID     string
	Title      string
	Content    string
}

// Update patches only the fields present in the input.
func (s *BlogService) Update(ctx context.Context, in UpdateBlogInput) (*models.Blog, error) {
	chain, err := s.owner.Resolve(ctx, in.UserID, in.CategoryID, in.BlogID)
	if err != nil {
		return nil, err
	}

	patch := bson.M{}
	if in.Title != "" {
		patch["title"] = in.Title
	}
	if in.Content != "" {
		patch["content"] = in.Content
	}

	b, err := s.blogs.Update(ctx, chain.Blog.ID, patch)
	if err != nil {
		if repositories.IsDuplicate(err) {
			return nil, ErrBlogExists
		}
		return nil, err
	}
	if b == nil {
		return nil, ErrBlogNotFound
	}
	return b, nil
}

// Delete removes the blog after resolving the full chain and returns the
// deleted document.
func (s *BlogService) Delete(ctx context.Context, userID, categoryID, blogID string) (*models.Blog, error) {
	chain, err := s.owner.Resolve(ctx, userID, categoryID, blogID)
	if err != nil {
		return nil, err
	}

	b, err := s.blogs.Delete(ctx, chain.Blog.ID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBlogNotFound
	}
	return b, nil
}
