package forms

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// SightingForm represents the base form structure for observation forms
type SightingForm struct{}

// SightForm contains the fields of a species observation. Coordinates are
// pointers so a missing field is distinguishable from a legitimate 0.
type SightForm struct {
	Species      string   `form:"species" json:"species" binding:"required,min=1,max=200"`
	Count        int      `form:"count" json:"count" binding:"omitempty,min=1"`
	Date         string   `form:"date" json:"date" binding:"required,datetime=2006-01-02"`
	Latitude     *float64 `form:"latitude" json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude    *float64 `form:"longitude" json:"longitude" binding:"required,gte=-180,lte=180"`
	Municipality string   `form:"municipality" json:"municipality" binding:"omitempty,max=200"`
	Comment      string   `form:"comment" json:"comment" binding:"omitempty,max=1000"`
}

// Field returns the appropriate error message for a failed validation tag
// on the named field.
func (f SightingForm) Field(field, tag string) string {
	switch field {
	case "Species":
		if tag == "required" {
			return "Please provide the observed species"
		}
		return "Species can be from 1 to 200 characters"
	case "Count":
		return "Count must be at least 1"
	case "Date":
		return "Date must be provided as YYYY-MM-DD"
	case "Latitude", "Longitude":
		if tag == "required" {
			return "Please provide the observation coordinates"
		}
		return "Coordinates are out of range"
	case "Municipality", "Comment":
		return "Text fields are too long"
	default:
		return "Something went wrong, please try again later"
	}
}

// Validate maps a binding error on a SightForm to a user-facing message
func (f SightingForm) Validate(err error) string {
	switch err.(type) {
	case validator.ValidationErrors:
		if _, ok := err.(*json.UnmarshalTypeError); ok {
			return "Something went wrong, please try again later"
		}

		for _, err := range err.(validator.ValidationErrors) {
			return f.Field(err.Field(), err.Tag())
		}
	default:
		return "Invalid request"
	}
	return "Something went wrong, please try again later"
}
