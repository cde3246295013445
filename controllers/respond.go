package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/shopcore-api/utils"
)

// fieldError is one entry in the body of a 400 response
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// bindingMessage turns a validator tag into a readable message
func bindingMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must not be empty"
	default:
		return "is invalid"
	}
}

// respondBindingError maps request-shape failures to a 400 with a structured
// list of field errors.
func respondBindingError(c *gin.Context, err error) {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		fields := make([]fieldError, 0, len(vErrs))
		for _, fe := range vErrs {
			fields = append(fields, fieldError{Field: fe.Field(), Message: bindingMessage(fe)})
		}
		c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": "invalid request body",
	})
}

// respondError is the only place service error kinds become HTTP statuses.
// Services never see transport codes; controllers never inspect messages.
func respondError(c *gin.Context, err error) {
	var (
		validationErr *utils.ValidationError
		notFoundErr   *utils.NotFoundError
		conflictErr   *utils.ConflictError
		authnErr      *utils.AuthenticationError
		authzErr      *utils.AuthorizationError
		transitionErr *utils.InvalidTransitionError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"errors": []fieldError{{Field: validationErr.Field, Message: validationErr.Message}},
		})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": err.Error()})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"status": "error", "message": err.Error()})
	case errors.As(err, &authnErr):
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": err.Error()})
	case errors.As(err, &authzErr):
		c.JSON(http.StatusForbidden, gin.H{"status": "error", "message": err.Error()})
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusConflict, gin.H{"status": "error", "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
	}
}

// pathID parses the numeric :id path parameter
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := parseUint(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors": []fieldError{{Field: name, Message: "must be a positive integer"}},
		})
		return 0, false
	}
	return id, true
}

func parseUint(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	return uint(n), err
}
