package controller

import (
	"errors"
	"net/http"
	"strconv"

	"lingua_edu_backend/internal/service"
	"lingua_edu_backend/internal/util"
	"lingua_edu_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CatalogService    *service.CatalogService
	EnrollmentService *service.EnrollmentService
	QuizService       *service.QuizService
}

func NewCourseController(catalogService *service.CatalogService, enrollmentService *service.EnrollmentService, quizService *service.QuizService) *CourseController {
	return &CourseController{
		CatalogService:    catalogService,
		EnrollmentService: enrollmentService,
		QuizService:       quizService,
	}
}

// ListCategories godoc
// @Summary List all categories
// @Tags catalog
// @Produce json
// @Success 200 {array} model.Category
// @Router /categories/ [get]
func (c *CourseController) ListCategories(ctx *gin.Context) {
	categories, err := c.CatalogService.ListCategories()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

// CategoryDetail godoc
// @Summary Get a category with its courses
// @Description Courses can be narrowed with ?level=; an unknown level
// matches nothing rather than erroring.
// @Tags catalog
// @Produce json
// @Param slug path string true "category slug"
// @Param level query string false "course level filter"
// @Success 200 {object} service.CategoryDetail
// @Failure 404 {object} map[string]string
// @Router /category/{slug}/ [get]
func (c *CourseController) CategoryDetail(ctx *gin.Context) {
	detail, err := c.CatalogService.GetCategoryDetail(ctx.Param("slug"), ctx.Query("level"))
	if err != nil {
		if errors.Is(err, util.ErrCategoryNotFound) {
			util.NotFound(ctx, "category not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// ListCourses godoc
// @Summary List courses
// @Tags catalog
// @Produce json
// @Param page query int false "page number"
// @Param page_size query int false "page size, default 10, max 100"
// @Success 200 {object} util.PageResponse
// @Router /courses/ [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", strconv.Itoa(util.DefaultPageSize)))

	courses, total, page, pageSize, err := c.CatalogService.ListCourses(page, pageSize)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, util.PageResponse{
		List:     courses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// CourseDetail godoc
// @Summary Get a course with its quizzes
// @Description Anonymous callers get the bare course. Authenticated
// callers additionally get per-quiz completion state and their stored
// result.
// @Tags catalog
// @Produce json
// @Param slug path string true "course slug"
// @Success 200 {object} service.CourseDetail
// @Failure 404 {object} map[string]string
// @Router /course/{slug}/ [get]
func (c *CourseController) CourseDetail(ctx *gin.Context) {
	var userID uint
	if claims := util.GetUserFromContext(ctx); claims != nil {
		userID = claims.UserID
	}

	detail, err := c.CatalogService.GetCourseDetail(ctx.Param("slug"), userID)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, "course not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// Enroll godoc
// @Summary Enroll the caller in a course
// @Description Idempotent: the first call creates the enrollment and
// returns 201, repeats return 200 with success=false.
// @Tags enrollment
// @Produce json
// @Security BearerAuth
// @Param slug path string true "course slug"
// @Success 201 {object} map[string]interface{}
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /enroll/{slug}/ [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	created, err := c.EnrollmentService.Enroll(claims.UserID, ctx.Param("slug"))
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, "course not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	if created {
		monitoring.Enrollments.Inc()
		ctx.JSON(http.StatusCreated, gin.H{
			"message": "Enrollment successful",
			"success": true,
		})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Already enrolled",
		"success": false,
	})
}

// SubmitQuiz godoc
// @Summary Submit quiz answers for scoring
// @Description Grades the submitted answers against the quiz, stores a
// result row and returns the score as a percentage of the quiz's full
// question count.
// @Tags quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "course slug"
// @Param body body service.SubmitQuizRequest true "quiz id and answers"
// @Success 201 {object} service.QuizResultResponse
// @Failure 400 {object} map[string]interface{}
// @Router /course/{slug}/submit-quiz [post]
func (c *CourseController) SubmitQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.Submit(claims.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuizNotFound):
			util.FieldErrors(ctx, map[string]string{"quiz": "invalid_quiz_id"})
		case errors.Is(err, util.ErrInvalidSubmission):
			monitoring.QuizSubmissions.WithLabelValues("rejected").Inc()
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.QuizSubmissions.WithLabelValues("scored").Inc()
	ctx.JSON(http.StatusCreated, result)
}
