package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/picardie-nature/GeoNature-citizen/forms"
	"github.com/picardie-nature/GeoNature-citizen/models"
	"github.com/picardie-nature/GeoNature-citizen/service"
)

// UserController handles user-related HTTP requests and responses
type UserController struct {
	users *service.UserService
}

// NewUserController creates and returns a new UserController instance
func NewUserController(users *service.UserService) *UserController {
	return &UserController{users: users}
}

var userForm = new(forms.UserForm)

// getUsername extracts and returns the authenticated username from the Gin context
func getUsername(c *gin.Context) string {
	//MustGet returns the value for the given key if it exists, otherwise it panics.
	return c.MustGet("username").(string)
}

// Register handles new user registration requests, validates input and
// creates a new account with its first token pair
func (ctrl UserController) Register(c *gin.Context) {
	var registerForm forms.RegisterForm

	if err := c.ShouldBindJSON(&registerForm); err != nil {
		message := userForm.Register(err)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": message})
		return
	}

	user, tokens, err := ctrl.users.Register(c.Request.Context(), registerForm)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateUser) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("User %s already exists", registerForm.Username)})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error_message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       fmt.Sprintf("Congratulations, user %s has been created", user.Username),
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
	})
}

// Login handles user authentication requests, validates credentials and
// returns a fresh token pair
func (ctrl UserController) Login(c *gin.Context) {
	var loginForm forms.LoginForm

	if validationErr := c.ShouldBindJSON(&loginForm); validationErr != nil {
		message := userForm.Login(validationErr)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": message})
		return
	}

	user, tokens, err := ctrl.users.Login(c.Request.Context(), loginForm)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUserNotFound):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("User %s doesn't exist", loginForm.Username)})
		case errors.Is(err, models.ErrInvalidCredentials):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error_message": "Wrong credentials"})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error_message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       fmt.Sprintf("Logged in as %s", user.Username),
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
	})
}

// AllUsers lists every registered user. Password hashes are never
// serialized.
func (ctrl UserController) AllUsers(c *gin.Context) {
	users, err := ctrl.users.All(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error_message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}

// LoggedUser returns the account of the authenticated user. The account
// may have been deleted since the token was issued.
func (ctrl UserController) LoggedUser(c *gin.Context) {
	user, err := ctrl.users.One(c.Request.Context(), getUsername(c))
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "User not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error_message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}
