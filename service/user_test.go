package service

import (
	"context"
	"testing"

	"github.com/picardie-nature/GeoNature-citizen/db"
	"github.com/picardie-nature/GeoNature-citizen/forms"
	"github.com/picardie-nature/GeoNature-citizen/kv"
	"github.com/picardie-nature/GeoNature-citizen/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserService() (*UserService, *db.Memory) {
	store := db.NewMemory()
	auth := NewAuthService(kv.NewMemory(), testJWTConfig())
	return NewUserService(store, auth), store
}

func aliceForm() forms.RegisterForm {
	return forms.RegisterForm{
		Username: "alice",
		Email:    "a@x.com",
		Password: "p1word",
		Name:     "Alice",
		Surname:  "Martin",
	}
}

func TestRegister_ThenLogin(t *testing.T) {
	ctx := context.Background()
	s, _ := newUserService()

	user, tokens, err := s.Register(ctx, aliceForm())
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	// stored password is a bcrypt hash of the submitted one
	assert.NotEqual(t, "p1word", user.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("p1word")))

	_, loginTokens, err := s.Login(ctx, forms.LoginForm{Username: "alice", Password: "p1word"})
	require.NoError(t, err)
	assert.NotEmpty(t, loginTokens.AccessToken)
	assert.NotEqual(t, tokens.AccessToken, loginTokens.AccessToken)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	s, store := newUserService()

	_, _, err := s.Register(ctx, aliceForm())
	require.NoError(t, err)

	form := aliceForm()
	form.Email = "other@x.com"
	_, _, err = s.Register(ctx, form)
	assert.ErrorIs(t, err, models.ErrDuplicateUser)

	users, err := store.AllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	s, _ := newUserService()

	_, _, err := s.Register(ctx, aliceForm())
	require.NoError(t, err)

	_, _, err = s.Login(ctx, forms.LoginForm{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	ctx := context.Background()
	s, _ := newUserService()

	_, _, err := s.Login(ctx, forms.LoginForm{Username: "nobody", Password: "p1word"})
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestOne_AccountDeletedAfterIssuance(t *testing.T) {
	ctx := context.Background()
	s, store := newUserService()

	_, _, err := s.Register(ctx, aliceForm())
	require.NoError(t, err)

	require.NoError(t, store.DeleteUser(ctx, "alice"))

	_, err = s.One(ctx, "alice")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}
