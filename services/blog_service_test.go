package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"blogdeck/models"
)

type blogFixture struct {
	svc        *BlogService
	user       *models.User
	category   *models.Category
	blogs      *fakeBlogStore
	categories *fakeCategoryStore
	users      *fakeUserStore
}

func newBlogFixture(t *testing.T) *blogFixture {
	t.Helper()
	users := &fakeUserStore{}
	categories := &fakeCategoryStore{}
	blogs := &fakeBlogStore{}

	u := &models.User{Username: "alice", Email: "alice@example.com"}
	if err := users.Insert(context.Background(), u); err != nil {
		t.Fatal(err)
	}
	c := &models.Category{Title: "Travel Tips", User: u.ID}
	if err := categories.Insert(context.Background(), c); err != nil {
		t.Fatal(err)
	}

	owner := NewOwnership(users, categories, blogs)
	return &blogFixture{
		svc:        NewBlogService(owner, blogs),
		user:       u,
		category:   c,
		blogs:      blogs,
		categories: categories,
		users:      users,
	}
}

func TestBlogCreateAndListEndToEnd(t *testing.T) {
	f := newBlogFixture(t)

	b, err := f.svc.Create(context.Background(), CreateBlogInput{
		UserID:     f.user.ID.Hex(),
		CategoryID: f.category.ID.Hex(),
		Title:      "First Trip",
		Content:    "Pack light.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.ID.IsZero() {
		t.Fatalf("expected inserted blog to get an id")
	}

	page, err := f.svc.List(context.Background(), ListBlogsInput{
		UserID:     f.user.ID.Hex(),
		CategoryID: f.category.ID.Hex(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Blogs) != 1 || page.TotalBlogs != 1 || page.TotalPages != 1 {
		t.Fatalf("expected one blog on one page, got %d blogs, total=%d, pages=%d",
			len(page.Blogs), page.TotalBlogs, page.TotalPages)
	}
}

func TestBlogCreateRequiresTitleAndContent(t *testing.T) {
	f := newBlogFixture(t)

	cases := []CreateBlogInput{
		{UserID: f.user.ID.Hex(), CategoryID: f.category.ID.Hex(), Title: "", Content: "body"},
		{UserID: f.user.ID.Hex(), CategoryID: f.category.ID.Hex(), Title: "title", Content: ""},
	}
	for _, in := range cases {
		if _, err := f.svc.Create(context.Background(), in); !errors.Is(err, ErrBlogFieldsRequired) {
			t.Fatalf("expected ErrBlogFieldsRequired, got %v", err)
		}
	}
}

func TestBlogCreateDuplicateTitleInCategory(t *testing.T) {
	f := newBlogFixture(t)

	in := CreateBlogInput{
		UserID:     f.user.ID.Hex(),
		CategoryID: f.category.ID.Hex(),
		Title:      "First Trip",
		Content:    "Pack light.",
	}
	if _, err := f.svc.Create(context.Background(), in); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.Create(context.Background(), in); !errors.Is(err, ErrBlogExists) {
		t.Fatalf("expected ErrBlogExists, got %v", err)
	}

	// Same title in another category of the same user is allowed.
	other := &models.Category{Title: "Food", User: f.user.ID}
	if err := f.categories.Insert(context.Background(), other); err != nil {
		t.Fatal(err)
	}
	in.CategoryID = other.ID.Hex()
	if _, err := f.svc.Create(context.Background(), in); err != nil {
		t.Fatalf("expected no conflict across categories, got %v", err)
	}
}

func TestBlogListPagination(t *testing.T) {
	f := newBlogFixture(t)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		b := &models.Blog{
			Title:     "Post " + string(rune('A'+i)),
			Content:   "...",
			User:      f.user.ID,
			Category:  f.category.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if err := f.blogs.Insert(context.Background(), b); err != nil {
			t.Fatal(err)
		}
	}

	page, err := f.svc.List(context.Background(), ListBlogsInput{
		UserID:     f.user.ID.Hex(),
		CategoryID: f.category.ID.Hex(),
		Page:       2,
		Limit:      5,
	})
	if err != nil {
		t.Fatal(err)
	}
	if page.TotalBlogs != 12 {
		t.Fatalf("expected total 12, got %d", page.TotalBlogs)
	}
	if page.TotalPages != 3 {
		t.Fatalf("expected 3 pages for total=12 limit=5, got %d", page.TotalPages)
	}
	if len(page.Blogs) != 5 {
		t.Fatalf("expected 5 blogs on page 2, got %d", len(page.Blogs))
	}
	// Newest first: page 2 starts at the 6th newest.
	if !page.Blogs[0].CreatedAt.After(page.Blogs[4].CreatedAt) {
		t.Fatalf("expected descending creation order within the page")
	}
}

func TestBlogListClampsPageAndLimit(t *testing.T) {
	f := newBlogFixture(t)

	b := &models.Blog{Title: "Only", Content: "...", User: f.user.ID, Category: f.category.ID}
	if err := f.blogs.Insert(context.Background(), b); err != nil {
		t.Fatal(err)
	}

	page, err := f.svc.List(context.Background(), ListBlogsInput{
		UserID:     f.user.ID.Hex(),
		CategoryID: f.category.ID.Hex(),
		Page:       -3,
		Limit:      0,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Blogs) != 1 || page.TotalPages != 1 {
		t.Fatalf("expected clamped pagination to return the single blog, got %+v", page)
	}
}

func TestBlogListSearchAndDateFilter(t *testing.T) {
	f := newBlogFixture(t)

	old := &models.Blog{
		Title: "Cats of Lisbon", Content: "so many cats",
		User: f.user.ID, Category: f.category.ID,
		CreatedAt: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
	}
	recent := &models.Blog{
		Title: "Dogs of Porto", Content: "cat-free zone",
		User: f.user.ID, Category: f.category.ID,
		CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, b := range []*models.Blog{old, recent} {
		if err := f.blogs.Insert(context.Background(), b); err != nil {
			t.Fatal(err)
		}
	}

	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	page, err := f.svc.List(context.Background(), ListBlogsInput{
		UserID:     f.user.ID.Hex(),
		CategoryID: f.category.ID.Hex(),
		Search:     "cat",
		EndDate:    &end,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Blogs) != 1 || page.Blogs[0].Title != "Cats of Lisbon" {
		t.Fatalf("expected only the old cat post, got %+v", page.Blogs)
	}
}

func TestBlogUpdatePatchesOnlyProvidedFields(t *testing.T) {
	f := newBlogFixture(t)

	b, err := f.svc.Create(context.Background(), CreateBlogInput{
		UserID:     f.user.ID.Hex(),
		CategoryID: f.category.ID.Hex(),
		Title:      "Original",
		Content:    "original content",
	})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := f.svc.Update(context.Background(), UpdateBlogInput{
		UserID:     f.user.ID.Hex(),
		CategoryID: f.category.ID.Hex(),
		BlogID:     b.ID.Hex(),
		Title:      "Renamed",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "Renamed" {
		t.Fatalf("expected Renamed, got %q", updated.Title)
	}
	if updated.Content != "original content" {
		t.Fatalf("expected content untouched, got %q", updated.Content)
	}
}

func TestBlogGetAndDeleteEnforceChain(t *testing.T) {
	f := newBlogFixture(t)

	b, err := f.svc.Create(context.Background(), CreateBlogInput{
		UserID:     f.user.ID.Hex(),
		CategoryID: f.category.ID.Hex(),
		Title:      "Mine",
		Content:    "...",
	})
	if err != nil {
		t.Fatal(err)
	}

	stranger := &models.User{Username: "bob", Email: "bob@example.com"}
	if err := f.users.Insert(context.Background(), stranger); err != nil {
		t.Fatal(err)
	}

	// Another user cannot reach the blog through its real category id:
	// the category lookup already fails for them.
	_, err = f.svc.Get(context.Background(), stranger.ID.Hex(), f.category.ID.Hex(), b.ID.Hex())
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}

	deleted, err := f.svc.Delete(context.Background(), f.user.ID.Hex(), f.category.ID.Hex(), b.ID.Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted.ID != b.ID {
		t.Fatalf("expected deleted blog to be returned")
	}

	_, err = f.svc.Get(context.Background(), f.user.ID.Hex(), f.category.ID.Hex(), b.ID.Hex())
	if !errors.Is(err, ErrBlogNotFound) {
		t.Fatalf("expected ErrBlogNotFound after delete, got %v", err)
	}
}
