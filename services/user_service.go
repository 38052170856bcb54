package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"blogdeck/auth"
	"blogdeck/models"
	"blogdeck/repositories"
)

// UserService handles signup, profile updates and login.
type UserService struct {
	users  UserStore
	hasher *auth.PasswordHasher
	tokens *auth.JWTManager
}

func NewUserService(users UserStore, hasher *auth.PasswordHasher, tokens *auth.JWTManager) *UserService {
	return &UserService{users: users, hasher: hasher, tokens: tokens}
}

type SignUpInput struct {
	Username string
	Email    string
	Password string
}

// SignUp hashes the password and creates the user. The plaintext is never
// stored.
func (s *UserService) SignUp(ctx context.Context, in SignUpInput) (*models.User, error) {
	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Username: in.Username,
		Email:    in.Email,
		Password: digest,
	}
	if err := s.users.Insert(ctx, u); err != nil {
		if repositories.IsDuplicate(err) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return u, nil
}

// Get loads a single user by id.
func (s *UserService) Get(ctx context.Context, userID string) (*models.User, error) {
	uid, err := ParseID(FieldUserID, userID)
	if err != nil {
		return nil, err
	}

	u, err := s.users.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

type UpdateUserInput struct {
	UserID      string
	NewEmail    string
	NewUsername string
	NewPassword string
}

// Update patches only the fields present in the input. A new password is
// hashed before it is written.
func (s *UserService) Update(ctx context.Context, in UpdateUserInput) (*models.User, error) {
	uid, err := ParseID(FieldUserID, in.UserID)
	if err != nil {
		return nil, err
	}

	patch := bson.M{}
	if in.NewEmail != "" {
		patch["email"] = in.NewEmail
	}
	if in.NewUsername != "" {
		patch["username"] = in.NewUsername
	}
	if in.NewPassword != "" {
		digest, err := s.hasher.Hash(in.NewPassword)
		if err != nil {
			return nil, err
		}
		patch["password"] = digest
	}

	u, err := s.users.Update(ctx, uid, patch)
	if err != nil {
		if repositories.IsDuplicate(err) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// Delete removes the user and returns the deleted document.
func (s *UserService) Delete(ctx context.Context, userID string) (*models.User, error) {
	uid, err := ParseID(FieldUserID, userID)
	if err != nil {
		return nil, err
	}

	u, err := s.users.Delete(ctx, uid)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// Login verifies the credentials and issues an API token. Lookup and compare
// failures collapse into one error so the response does not reveal whether
// the email exists.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if u == nil || !s.hasher.Compare(u.Password, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(u.ID.Hex())
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}
