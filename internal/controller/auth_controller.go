package controller

import (
	"errors"
	"net/http"

	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/internal/service"
	"lingua_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func userPayload(user *model.User) gin.H {
	return gin.H{
		"id":         user.ID,
		"email":      user.Email,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Creates a user keyed by email and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "field errors, email: already_registered on duplicate"
// @Router /register/ [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	fields := map[string]string{}
	if req.Email == "" {
		fields["email"] = "missing_required_field"
	}
	if req.Password == "" {
		fields["password"] = "missing_required_field"
	}
	if len(fields) > 0 {
		util.FieldErrors(ctx, fields)
		return
	}

	user := &model.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      model.Student,
	}

	token, err := c.AuthService.Register(user)
	if err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.FieldErrors(ctx, map[string]string{"email": "already_registered"})
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"user":    userPayload(user),
		"token":   token,
		"success": true,
	})
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and returns a bearer token. Wrong
// email and wrong password are indistinguishable on purpose.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /login/ [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	fields := map[string]string{}
	if req.Email == "" {
		fields["email"] = "missing_required_field"
	}
	if req.Password == "" {
		fields["password"] = "missing_required_field"
	}
	if len(fields) > 0 {
		util.FieldErrors(ctx, fields)
		return
	}

	token, user, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"detail":  gin.H{"auth": "invalid_credentials"},
			})
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user":    userPayload(user),
		"token":   token,
		"success": true,
	})
}
