package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/picardie-nature/GeoNature-citizen/db"
	"github.com/picardie-nature/GeoNature-citizen/forms"
	"github.com/picardie-nature/GeoNature-citizen/models"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles registration, login and account lookups.
type UserService struct {
	db   db.Database
	auth *AuthService
}

func NewUserService(db db.Database, auth *AuthService) *UserService {
	return &UserService{
		db:   db,
		auth: auth,
	}
}

// Register creates a new account and issues its first token pair. The
// pre-insert existence check is best-effort; the storage layer's unique
// constraint is what actually rejects concurrent duplicates.
func (s *UserService) Register(ctx context.Context, form forms.RegisterForm) (user models.User, tokens models.TokenPair, err error) {
	exists, err := s.db.UsernameExists(ctx, form.Username)
	if err != nil {
		slog.Error("failed to check if username exists", "error", err, "username", form.Username)
		return user, tokens, err
	}
	if exists {
		return user, tokens, models.ErrDuplicateUser
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		return user, tokens, err
	}

	user, err = s.db.CreateUser(ctx, db.CreateUser{
		Username: form.Username,
		Email:    form.Email,
		Name:     form.Name,
		Surname:  form.Surname,
		PwdHash:  string(hashedPassword),
	})
	if err != nil {
		return user, tokens, err
	}

	tokens, err = s.auth.IssuePair(user.Username)
	if err != nil {
		return user, tokens, err
	}

	return user, tokens, nil
}

// Login verifies credentials and issues a fresh token pair.
func (s *UserService) Login(ctx context.Context, form forms.LoginForm) (user models.User, tokens models.TokenPair, err error) {
	user, err = s.db.FindByUsername(ctx, form.Username)
	if err != nil {
		return user, tokens, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(form.Password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return user, tokens, models.ErrInvalidCredentials
		}
		return user, tokens, err
	}

	tokens, err = s.auth.IssuePair(user.Username)
	if err != nil {
		return user, tokens, err
	}

	return user, tokens, nil
}

// All returns every registered user. Password hashes are excluded by the
// model's serialization, not here.
func (s *UserService) All(ctx context.Context) ([]models.User, error) {
	return s.db.AllUsers(ctx)
}

// One returns the user with the given username.
func (s *UserService) One(ctx context.Context, username string) (models.User, error) {
	return s.db.FindByUsername(ctx, username)
}
