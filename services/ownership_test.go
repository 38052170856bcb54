package services

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blogdeck/models"
)

func TestParseID(t *testing.T) {
	valid := primitive.NewObjectID().Hex()
	if _, err := ParseID(FieldUserID, valid); err != nil {
		t.Fatalf("expected generated id %q to parse, got %v", valid, err)
	}

	malformed := []string{
		"",
		"not-hex",
		"1234",
		"zzzzzzzzzzzzzzzzzzzzzzzz",
		valid + "00",
		valid[:23],
	}
	for _, s := range malformed {
		_, err := ParseID(FieldCategoryID, s)
		var invalid *InvalidIDError
		if !errors.As(err, &invalid) {
			t.Fatalf("ParseID(%q): expected InvalidIDError, got %v", s, err)
		}
		if invalid.Field != FieldCategoryID {
			t.Fatalf("expected field %q, got %q", FieldCategoryID, invalid.Field)
		}
	}
}

func newOwnershipFixture() (*Ownership, *fakeUserStore, *fakeCategoryStore, *fakeBlogStore) {
	users := &fakeUserStore{}
	categories := &fakeCategoryStore{}
	blogs := &fakeBlogStore{}
	return NewOwnership(users, categories, blogs), users, categories, blogs
}

func TestResolveUserOnly(t *testing.T) {
	owner, users, _, _ := newOwnershipFixture()
	u := &models.User{Username: "alice", Email: "alice@example.com"}
	if err := users.Insert(context.Background(), u); err != nil {
		t.Fatal(err)
	}

	chain, err := owner.Resolve(context.Background(), u.ID.Hex(), "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chain.User == nil || chain.User.ID != u.ID {
		t.Fatalf("expected resolved user %s", u.ID.Hex())
	}
	if chain.Category != nil || chain.Blog != nil {
		t.Fatalf("expected category and blog to stay nil")
	}
}

func TestResolveRejectsMalformedIDsBeforeLookups(t *testing.T) {
	owner, users, _, _ := newOwnershipFixture()
	u := &models.User{Username: "alice", Email: "alice@example.com"}
	if err := users.Insert(context.Background(), u); err != nil {
		t.Fatal(err)
	}

	// Even with a valid user, a malformed category id must fail with the
	// format error, not a not-found.
	_, err := owner.Resolve(context.Background(), u.ID.Hex(), "nope", "")
	var invalid *InvalidIDError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidIDError, got %v", err)
	}
	if invalid.Field != FieldCategoryID {
		t.Fatalf("expected category ID field, got %q", invalid.Field)
	}
}

func TestResolveUserNotFound(t *testing.T) {
	owner, _, _, _ := newOwnershipFixture()

	_, err := owner.Resolve(context.Background(), primitive.NewObjectID().Hex(), "", "")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestResolveHidesOtherTenantsCategories(t *testing.T) {
	owner, users, categories, _ := newOwnershipFixture()

	alice := &models.User{Username: "alice", Email: "alice@example.com"}
	bob := &models.User{Username: "bob", Email: "bob@example.com"}
	for _, u := range []*models.User{alice, bob} {
		if err := users.Insert(context.Background(), u); err != nil {
			t.Fatal(err)
		}
	}

	bobsCategory := &models.Category{Title: "Travel", User: bob.ID}
	if err := categories.Insert(context.Background(), bobsCategory); err != nil {
		t.Fatal(err)
	}

	// alice asking for bob's category gets the same answer as asking for a
	// category that does not exist at all
	_, err := owner.Resolve(context.Background(), alice.ID.Hex(), bobsCategory.ID.Hex(), "")
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}

	_, err = owner.Resolve(context.Background(), alice.ID.Hex(), primitive.NewObjectID().Hex(), "")
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound for missing category, got %v", err)
	}
}

func TestResolveFullChain(t *testing.T) {
	owner, users, categories, blogs := newOwnershipFixture()

	u := &models.User{Username: "alice", Email: "alice@example.com"}
	if err := users.Insert(context.Background(), u); err != nil {
		t.Fatal(err)
	}
	c := &models.Category{Title: "Travel", User: u.ID}
	if err := categories.Insert(context.Background(), c); err != nil {
		t.Fatal(err)
	}
	b := &models.Blog{Title: "First Trip", Content: "...", User: u.ID, Category: c.ID}
	if err := blogs.Insert(context.Background(), b); err != nil {
		t.Fatal(err)
	}

	chain, err := owner.Resolve(context.Background(), u.ID.Hex(), c.ID.Hex(), b.ID.Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chain.Blog == nil || chain.Blog.ID != b.ID {
		t.Fatalf("expected resolved blog %s", b.ID.Hex())
	}

	// A blog in another category of the same user is outside the chain.
	other := &models.Category{Title: "Food", User: u.ID}
	if err := categories.Insert(context.Background(), other); err != nil {
		t.Fatal(err)
	}
	_, err = owner.Resolve(context.Background(), u.ID.Hex(), other.ID.Hex(), b.ID.Hex())
	if !errors.Is(err, ErrBlogNotFound) {
		t.Fatalf("expected ErrBlogNotFound, got %v", err)
	}
}
