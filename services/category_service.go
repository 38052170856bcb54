package services

import (
	"context"

	"blogdeck/models"
	"blogdeck/repositories"
	"blogdeck/titles"
)

// CategoryService owns the normalized-title invariant: titles are stored in
// canonical form and must be unique per owner.
type CategoryService struct {
	owner      *Ownership
	categories CategoryStore
}

func NewCategoryService(owner *Ownership, categories CategoryStore) *CategoryService {
	return &CategoryService{owner: owner, categories: categories}
}

// Create normalizes the title and inserts the category for the user. The
// duplicate lookup is a fast path; the unique index catches the
// check-then-insert race.
func (s *CategoryService) Create(ctx context.Context, userID, title string) (*models.Category, error) {
	chain, err := s.owner.Resolve(ctx, userID, "", "")
	if err != nil {
		return nil, err
	}

	normalized := titles.Normalize(title)
	if normalized == "" {
		return nil, ErrTitleRequired
	}

	exists, err := s.categories.TitleExists(ctx, chain.User.ID, normalized, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCategoryExists
	}

	c := &models.Category{Title: normalized, User: chain.User.ID}
	if err := s.categories.Insert(ctx, c); err != nil {
		if repositories.IsDuplicate(err) {
			return nil, ErrCategoryExists
		}
		return nil, err
	}
	return c, nil
}

// Get resolves the chain and returns the category, hiding categories owned
// by other users.
func (s *CategoryService) Get(ctx context.Context, userID, categoryID string) (*models.Category, error) {
	chain, err := s.owner.Resolve(ctx, userID, categoryID, "")
	if err != nil {
		return nil, err
	}
	return chain.Category, nil
}

// List returns all of the user's categories.
func (s *CategoryService) List(ctx context.Context, userID string) ([]models.Category, error) {
	chain, err := s.owner.Resolve(ctx, userID, "", "")
	if err != nil {
		return nil, err
	}
	return s.categories.FindByOwner(ctx, chain.User.ID)
}

// Update renames the category. The duplicate check excludes the category
// itself so an unchanged title does not conflict.
func (s *CategoryService) Update(ctx context.Context, userID, categoryID, title string) (*models.Category, error) {
	chain, err := s.owner.Resolve(ctx, userID, categoryID, "")
	if err != nil {
		return nil, err
	}

	normalized := titles.Normalize(title)
	if normalized == "" {
		return nil, ErrTitleRequired
	}

	exclude := chain.Category.ID
	taken, err := s.categories.TitleExists(ctx, chain.User.ID, normalized, &exclude)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrCategoryTitleTaken
	}

	c, err := s.categories.UpdateTitle(ctx, chain.Category.ID, normalized)
	if err != nil {
		if repositories.IsDuplicate(err) {
			return nil, ErrCategoryTitleTaken
		}
		return nil, err
	}
	if c == nil {
		return nil, ErrCategoryNotFound
	}
	return c, nil
}

// Delete removes the category after resolving ownership.
func (s *CategoryService) Delete(ctx context.Context, userID, categoryID string) error {
	chain, err := s.owner.Resolve(ctx, userID, categoryID, "")
	if err != nil {
		return err
	}
	return s.categories.Delete(ctx, chain.Category.ID)
}
