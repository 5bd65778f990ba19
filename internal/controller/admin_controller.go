package controller

import (
	"errors"
	"net/http"
	"strconv"

	"lingua_edu_backend/internal/repository"
	"lingua_edu_backend/internal/service"
	"lingua_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminController serves the content management API. Everything here
// sits behind the admin role gate.
type AdminController struct {
	ContentService *service.ContentService
	StorageService *service.StorageService
	UserRepo       *repository.UserRepository
}

func NewAdminController(contentService *service.ContentService, storageService *service.StorageService, userRepo *repository.UserRepository) *AdminController {
	return &AdminController{
		ContentService: contentService,
		StorageService: storageService,
		UserRepo:       userRepo,
	}
}

func (c *AdminController) handleContentError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrCategoryNotFound):
		util.NotFound(ctx, "category not found")
	case errors.Is(err, util.ErrCourseNotFound):
		util.NotFound(ctx, "course not found")
	case errors.Is(err, util.ErrQuizNotFound):
		util.NotFound(ctx, "quiz not found")
	case errors.Is(err, util.ErrQuestionNotFound):
		util.NotFound(ctx, "question not found")
	case errors.Is(err, util.ErrGroupNotFound):
		util.NotFound(ctx, "group not found")
	case errors.Is(err, util.ErrSlugTaken):
		util.FieldErrors(ctx, map[string]string{"slug": "already_taken"})
	case errors.Is(err, gorm.ErrRecordNotFound):
		util.NotFound(ctx, "resource not found")
	default:
		util.LogInternalError(ctx, err)
	}
}

// ListCategories godoc
// @Summary List categories for the admin console
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /admin/categories [get]
func (c *AdminController) ListCategories(ctx *gin.Context) {
	categories, err := c.ContentService.ListCategories()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

// CreateCategory godoc
// @Summary Create a category
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CategoryRequest true "category data"
// @Success 201 {object} util.Response
// @Router /admin/categories [post]
func (c *AdminController) CreateCategory(ctx *gin.Context) {
	var req service.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category, err := c.ContentService.CreateCategory(req)
	if err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Created(ctx, category)
}

// UpdateCategory godoc
// @Summary Update a category
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "category id"
// @Param body body service.CategoryRequest true "category data"
// @Success 200 {object} util.Response
// @Router /admin/categories/{id} [put]
func (c *AdminController) UpdateCategory(ctx *gin.Context) {
	var req service.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category, err := c.ContentService.UpdateCategory(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Success(ctx, category)
}

// DeleteCategory godoc
// @Summary Delete a category and everything under it
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "category id"
// @Success 200 {object} util.Response
// @Router /admin/categories/{id} [delete]
func (c *AdminController) DeleteCategory(ctx *gin.Context) {
	if err := c.ContentService.DeleteCategory(util.MustParseUint(ctx.Param("id"))); err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// CreateCourse godoc
// @Summary Create a course
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CourseRequest true "course data"
// @Success 201 {object} util.Response
// @Router /admin/courses [post]
func (c *AdminController) CreateCourse(ctx *gin.Context) {
	var req service.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.ContentService.CreateCourse(req)
	if err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// UpdateCourse godoc
// @Summary Update a course
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "course id"
// @Param body body service.CourseRequest true "course data"
// @Success 200 {object} util.Response
// @Router /admin/courses/{id} [put]
func (c *AdminController) UpdateCourse(ctx *gin.Context) {
	var req service.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.ContentService.UpdateCourse(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// DeleteCourse godoc
// @Summary Delete a course and its quizzes
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "course id"
// @Success 200 {object} util.Response
// @Router /admin/courses/{id} [delete]
func (c *AdminController) DeleteCourse(ctx *gin.Context) {
	if err := c.ContentService.DeleteCourse(util.MustParseUint(ctx.Param("id"))); err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ListQuizzes godoc
// @Summary List quizzes for a course
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param course_id query int true "course id"
// @Success 200 {object} util.Response
// @Router /admin/quizzes [get]
func (c *AdminController) ListQuizzes(ctx *gin.Context) {
	quizzes, err := c.ContentService.ListQuizzesByCourse(util.MustParseUint(ctx.Query("course_id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// CreateQuiz godoc
// @Summary Create a quiz under a course
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.QuizRequest true "quiz data"
// @Success 201 {object} util.Response
// @Router /admin/quizzes [post]
func (c *AdminController) CreateQuiz(ctx *gin.Context) {
	var req service.QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.ContentService.CreateQuiz(req)
	if err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Created(ctx, quiz)
}

// UpdateQuiz godoc
// @Summary Update a quiz
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "quiz id"
// @Param body body service.QuizRequest true "quiz data"
// @Success 200 {object} util.Response
// @Router /admin/quizzes/{id} [put]
func (c *AdminController) UpdateQuiz(ctx *gin.Context) {
	var req service.QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.ContentService.UpdateQuiz(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// DeleteQuiz godoc
// @Summary Delete a quiz with its questions and results
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "quiz id"
// @Success 200 {object} util.Response
// @Router /admin/quizzes/{id} [delete]
func (c *AdminController) DeleteQuiz(ctx *gin.Context) {
	if err := c.ContentService.DeleteQuiz(util.MustParseUint(ctx.Param("id"))); err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// CreateQuestion godoc
// @Summary Create a multiple choice question
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.QuestionRequest true "question data"
// @Success 201 {object} util.Response
// @Router /admin/questions [post]
func (c *AdminController) CreateQuestion(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.ContentService.CreateQuestion(req)
	if err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Created(ctx, question)
}

// UpdateQuestion godoc
// @Summary Update a multiple choice question
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "question id"
// @Param body body service.QuestionRequest true "question data"
// @Success 200 {object} util.Response
// @Router /admin/questions/{id} [put]
func (c *AdminController) UpdateQuestion(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.ContentService.UpdateQuestion(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// DeleteQuestion godoc
// @Summary Delete a multiple choice question
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "question id"
// @Success 200 {object} util.Response
// @Router /admin/questions/{id} [delete]
func (c *AdminController) DeleteQuestion(ctx *gin.Context) {
	if err := c.ContentService.DeleteQuestion(util.MustParseUint(ctx.Param("id"))); err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// CreateOption godoc
// @Summary Add an option to a multiple choice question
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "question id"
// @Param body body service.OptionRequest true "option data"
// @Success 201 {object} util.Response
// @Router /admin/questions/{id}/options [post]
func (c *AdminController) CreateOption(ctx *gin.Context) {
	var req service.OptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	option, err := c.ContentService.CreateOption(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Created(ctx, option)
}

// UpdateOption godoc
// @Summary Update an option
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "option id"
// @Param body body service.OptionRequest true "option data"
// @Success 200 {object} util.Response
// @Router /admin/options/{id} [put]
func (c *AdminController) UpdateOption(ctx *gin.Context) {
	var req service.OptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	option, err := c.ContentService.UpdateOption(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Success(ctx, option)
}

// DeleteOption godoc
// @Summary Delete an option
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "option id"
// @Success 200 {object} util.Response
// @Router /admin/options/{id} [delete]
func (c *AdminController) DeleteOption(ctx *gin.Context) {
	if err := c.ContentService.DeleteOption(util.MustParseUint(ctx.Param("id"))); err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// CreateFillBlankQuestion godoc
// @Summary Create a fill in the blank question
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.FillBlankQuestionRequest true "question data"
// @Success 201 {object} util.Response
// @Router /admin/fill-blank-questions [post]
func (c *AdminController) CreateFillBlankQuestion(ctx *gin.Context) {
	var req service.FillBlankQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.ContentService.CreateFillBlankQuestion(req)
	if err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Created(ctx, question)
}

// UpdateFillBlankQuestion godoc
// @Summary Update a fill in the blank question
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "question id"
// @Param body body service.FillBlankQuestionRequest true "question data"
// @Success 200 {object} util.Response
// @Router /admin/fill-blank-questions/{id} [put]
func (c *AdminController) UpdateFillBlankQuestion(ctx *gin.Context) {
	var req service.FillBlankQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.ContentService.UpdateFillBlankQuestion(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// DeleteFillBlankQuestion godoc
// @Summary Delete a fill in the blank question
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "question id"
// @Success 200 {object} util.Response
// @Router /admin/fill-blank-questions/{id} [delete]
func (c *AdminController) DeleteFillBlankQuestion(ctx *gin.Context) {
	if err := c.ContentService.DeleteFillBlankQuestion(util.MustParseUint(ctx.Param("id"))); err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// CreateFillBlankOption godoc
// @Summary Add a distractor option to a fill in the blank question
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "question id"
// @Param body body service.FillBlankOptionRequest true "option data"
// @Success 201 {object} util.Response
// @Router /admin/fill-blank-questions/{id}/options [post]
func (c *AdminController) CreateFillBlankOption(ctx *gin.Context) {
	var req service.FillBlankOptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	option, err := c.ContentService.CreateFillBlankOption(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Created(ctx, option)
}

// DeleteFillBlankOption godoc
// @Summary Delete a distractor option
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "option id"
// @Success 200 {object} util.Response
// @Router /admin/fill-blank-options/{id} [delete]
func (c *AdminController) DeleteFillBlankOption(ctx *gin.Context) {
	if err := c.ContentService.DeleteFillBlankOption(util.MustParseUint(ctx.Param("id"))); err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ListGroups godoc
// @Summary List learner groups
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /admin/groups [get]
func (c *AdminController) ListGroups(ctx *gin.Context) {
	groups, err := c.ContentService.ListGroups()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, groups)
}

// CreateGroup godoc
// @Summary Create a learner group
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.GroupRequest true "group data"
// @Success 201 {object} util.Response
// @Router /admin/groups [post]
func (c *AdminController) CreateGroup(ctx *gin.Context) {
	var req service.GroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	group, err := c.ContentService.CreateGroup(req)
	if err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Created(ctx, group)
}

// UpdateGroup godoc
// @Summary Update a learner group
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "group id"
// @Param body body service.GroupRequest true "group data"
// @Success 200 {object} util.Response
// @Router /admin/groups/{id} [put]
func (c *AdminController) UpdateGroup(ctx *gin.Context) {
	var req service.GroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	group, err := c.ContentService.UpdateGroup(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Success(ctx, group)
}

// DeleteGroup godoc
// @Summary Delete a learner group
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "group id"
// @Success 200 {object} util.Response
// @Router /admin/groups/{id} [delete]
func (c *AdminController) DeleteGroup(ctx *gin.Context) {
	if err := c.ContentService.DeleteGroup(util.MustParseUint(ctx.Param("id"))); err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ListUsers godoc
// @Summary List registered users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "page number"
// @Param page_size query int false "page size"
// @Success 200 {object} util.Response
// @Router /admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", strconv.Itoa(util.DefaultPageSize)))
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = util.DefaultPageSize
	}
	if pageSize > util.MaxPageSize {
		pageSize = util.MaxPageSize
	}

	users, total, err := c.UserRepo.List(page, pageSize)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:     users,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// UploadImage godoc
// @Summary Upload a course image
// @Description Accepts a multipart image and stores it under a random
// name, returning the public URL.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "image file"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /admin/upload/image [post]
func (c *AdminController) UploadImage(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	// Sniff the actual content instead of trusting the client header.
	contentType, err := util.ValidateMimeType(file, []string{util.MimeImage})
	if err != nil || !util.IsImage(contentType) {
		util.BadRequest(ctx, "only image uploads are allowed")
		return
	}
	if _, err := file.Seek(0, 0); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	filename := util.RandomFilename(fileHeader.Filename)
	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, file, fileHeader.Size, contentType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, util.Response{
		Code:    http.StatusCreated,
		Message: "created",
		Data:    gin.H{"url": url},
	})
}
