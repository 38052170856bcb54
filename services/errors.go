package services

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrBlogNotFound     = errors.New("blog not found")

	// Conflicts. ErrCategoryTitleTaken is the update-time variant so the
	// handler can keep its own response wording.
	ErrUserExists         = errors.New("user already exists")
	ErrCategoryExists     = errors.New("category already exists")
	ErrCategoryTitleTaken = errors.New("category title already taken")
	ErrBlogExists         = errors.New("blog already exists")

	// Required-field failures, reported before any lookup runs.
	ErrTitleRequired      = errors.New("title is required")
	ErrBlogFieldsRequired = errors.New("title and content are required")

	ErrInvalidCredentials = errors.New("invalid email or password")
)

// InvalidIDError marks a malformed or missing identifier, naming the
// offending field. Format errors always precede not-found errors.
type InvalidIDError struct {
	Field string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid or missing %s", e.Field)
}
