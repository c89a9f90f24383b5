package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/picardie-nature/GeoNature-citizen/forms"
	"github.com/picardie-nature/GeoNature-citizen/service"
)

// SightController handles observation submission and listing.
type SightController struct {
	sights *service.SightService
}

var sightForm = new(forms.SightingForm)

func NewSightController(sights *service.SightService) *SightController {
	return &SightController{sights: sights}
}

// Create validates and persists a new observation, attributed to the
// authenticated contributor.
func (ctrl SightController) Create(c *gin.Context) {
	var form forms.SightForm
	if err := c.ShouldBindJSON(&form); err != nil {
		message := sightForm.Validate(err)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": message})
		return
	}

	sighting, err := ctrl.sights.Submit(c.Request.Context(), form, getUsername(c))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error_message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, sighting)
}

// List returns all recorded observations, newest first.
func (ctrl SightController) List(c *gin.Context) {
	sightings, err := ctrl.sights.All(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error_message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sightings)
}
