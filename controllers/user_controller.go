package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopcore-api/dto"
	"github.com/shopcore-api/models"
	"github.com/shopcore-api/services"
)

// UserController maps the /users routes onto the user service
type UserController struct {
	service *services.UserService
}

// NewUserController creates a user controller
func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

// SignUp registers a new account
func (ctl *UserController) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := ctl.service.SignUp(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// LogIn authenticates a user and returns a signed token
func (ctl *UserController) LogIn(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	resp, err := ctl.service.LogIn(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update applies a partial patch to a user
func (ctl *UserController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := ctl.service.UpdateUser(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Suspend moves an account to SUSPENDED
func (ctl *UserController) Suspend(c *gin.Context) {
	ctl.changeStatus(c, models.UserStatusSuspended)
}

// Activate moves an account to ACTIVE
func (ctl *UserController) Activate(c *gin.Context) {
	ctl.changeStatus(c, models.UserStatusActive)
}

// Delete soft-deletes an account by moving it to DELETED
func (ctl *UserController) Delete(c *gin.Context) {
	ctl.changeStatus(c, models.UserStatusDeleted)
}

func (ctl *UserController) changeStatus(c *gin.Context, status models.UserStatus) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := ctl.service.ChangeUserStatus(id, status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
