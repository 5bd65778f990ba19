package controller

import (
	"net/http"

	"lingua_edu_backend/internal/service"
	"lingua_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	EnrollmentService *service.EnrollmentService
	AuthService       *service.AuthService
}

func NewUserController(enrollmentService *service.EnrollmentService, authService *service.AuthService) *UserController {
	return &UserController{
		EnrollmentService: enrollmentService,
		AuthService:       authService,
	}
}

// EnrolledCourses godoc
// @Summary List the caller's enrolled courses
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Course
// @Router /user/ [get]
func (c *UserController) EnrolledCourses(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courses, err := c.EnrollmentService.ListUserCourses(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, courses)
}

// Me godoc
// @Summary Get the caller's profile
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /user/me [get]
func (c *UserController) Me(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"email":      user.Email,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"role":       user.Role,
	})
}
