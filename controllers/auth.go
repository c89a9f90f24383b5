package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/picardie-nature/GeoNature-citizen/models"
	"github.com/picardie-nature/GeoNature-citizen/service"
)

// AuthController handles token lifecycle operations: the access-token
// middleware, refresh and logout.
type AuthController struct {
	auth *service.AuthService
}

// NewAuthController creates and returns a new AuthController instance
func NewAuthController(auth *service.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// TokenValid validates the access token from the request and stores the
// token subject in the context for downstream handlers.
func (ctrl AuthController) TokenValid(c *gin.Context) {
	raw := ctrl.auth.ExtractToken(c.Request)

	claims, err := ctrl.auth.VerifyToken(raw, models.TokenAccess)
	if err != nil {
		if models.IsTokenError(err) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Please login first"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error_message": err.Error()})
		return
	}

	// To be called from getUsername()
	c.Set("username", claims.Subject)
}

// Refresh issues a new access token against a valid, non-revoked refresh
// token. The refresh token itself is not rotated.
func (ctrl AuthController) Refresh(c *gin.Context) {
	raw := ctrl.auth.ExtractToken(c.Request)

	claims, err := ctrl.auth.VerifyToken(raw, models.TokenRefresh)
	if err != nil {
		if models.IsTokenError(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid authorization, please login again"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error_message": err.Error()})
		return
	}

	access, _, err := ctrl.auth.IssueToken(claims.Subject, models.TokenAccess)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error_message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": access})
}

// Logout revokes the presented refresh token. Only signature and expiry
// are checked so that logging out with an already-revoked token still
// succeeds.
func (ctrl AuthController) Logout(c *gin.Context) {
	raw := ctrl.auth.ExtractToken(c.Request)

	claims, err := ctrl.auth.VerifyStructure(raw, models.TokenRefresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid authorization, please login again"})
		return
	}

	if err := ctrl.auth.Revoke(claims); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error_message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Refresh token has been revoked"})
}
