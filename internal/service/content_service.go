package service

import (
	"errors"

	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/internal/repository"
	"lingua_edu_backend/internal/util"

	"gorm.io/gorm"
)

// ContentService backs the administrative content interface. Content
// entities are only ever created or edited here, never by learner
// traffic.
type ContentService struct {
	CategoryRepo *repository.CategoryRepository
	CourseRepo   *repository.CourseRepository
	QuizRepo     *repository.QuizRepository
	GroupRepo    *repository.GroupRepository
}

func NewContentService(
	categoryRepo *repository.CategoryRepository,
	courseRepo *repository.CourseRepository,
	quizRepo *repository.QuizRepository,
	groupRepo *repository.GroupRepository,
) *ContentService {
	return &ContentService{
		CategoryRepo: categoryRepo,
		CourseRepo:   courseRepo,
		QuizRepo:     quizRepo,
		GroupRepo:    groupRepo,
	}
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
}

func (s *ContentService) CreateCategory(req CategoryRequest) (*model.Category, error) {
	if _, err := s.CategoryRepo.FindBySlug(req.Slug); err == nil {
		return nil, util.ErrSlugTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := &model.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	}
	if err := s.CategoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *ContentService) UpdateCategory(id uint, req CategoryRequest) (*model.Category, error) {
	category, err := s.CategoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCategoryNotFound
		}
		return nil, err
	}

	if existing, err := s.CategoryRepo.FindBySlug(req.Slug); err == nil && existing.ID != id {
		return nil, util.ErrSlugTaken
	}

	category.Name = req.Name
	category.Slug = req.Slug
	category.Description = req.Description
	if err := s.CategoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory cascades through courses, quizzes, questions and
// options at the storage layer.
func (s *ContentService) DeleteCategory(id uint) error {
	if _, err := s.CategoryRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCategoryNotFound
		}
		return err
	}
	return s.CategoryRepo.Delete(id)
}

type CourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	CategoryID  uint   `json:"category_id" binding:"required"`
	Level       string `json:"level"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

func (s *ContentService) CreateCourse(req CourseRequest) (*model.Course, error) {
	if _, err := s.CategoryRepo.FindByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCategoryNotFound
		}
		return nil, err
	}
	if _, err := s.CourseRepo.FindBySlug(req.Slug); err == nil {
		return nil, util.ErrSlugTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	level := model.LevelA1
	if req.Level != "" {
		if !model.ValidLevel(req.Level) {
			return nil, errors.New("invalid level: " + req.Level)
		}
		level = model.CourseLevel(req.Level)
	}

	course := &model.Course{
		Title:       req.Title,
		Slug:        req.Slug,
		CategoryID:  req.CategoryID,
		Level:       level,
		Image:       req.Image,
		Description: req.Description,
		Content:     req.Content,
	}
	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *ContentService) UpdateCourse(id uint, req CourseRequest) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	if _, err := s.CategoryRepo.FindByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCategoryNotFound
		}
		return nil, err
	}
	if existing, err := s.CourseRepo.FindBySlug(req.Slug); err == nil && existing.ID != id {
		return nil, util.ErrSlugTaken
	}
	if req.Level != "" && !model.ValidLevel(req.Level) {
		return nil, errors.New("invalid level: " + req.Level)
	}

	course.Title = req.Title
	course.Slug = req.Slug
	course.CategoryID = req.CategoryID
	if req.Level != "" {
		course.Level = model.CourseLevel(req.Level)
	}
	course.Image = req.Image
	course.Description = req.Description
	course.Content = req.Content
	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *ContentService) DeleteCourse(id uint) error {
	if _, err := s.CourseRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCourseNotFound
		}
		return err
	}
	return s.CourseRepo.Delete(id)
}

type QuizRequest struct {
	CourseID    uint   `json:"course_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

func (s *ContentService) CreateQuiz(req QuizRequest) (*model.Quiz, error) {
	if _, err := s.CourseRepo.FindByID(req.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	quiz := &model.Quiz{
		CourseID:    req.CourseID,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.QuizRepo.Create(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *ContentService) UpdateQuiz(id uint, req QuizRequest) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	if _, err := s.CourseRepo.FindByID(req.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	quiz.CourseID = req.CourseID
	quiz.Title = req.Title
	quiz.Description = req.Description
	if err := s.QuizRepo.Update(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *ContentService) DeleteQuiz(id uint) error {
	if _, err := s.QuizRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuizNotFound
		}
		return err
	}
	return s.QuizRepo.Delete(id)
}

type QuestionRequest struct {
	QuizID uint   `json:"quiz_id" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

func (s *ContentService) CreateQuestion(req QuestionRequest) (*model.Question, error) {
	if _, err := s.QuizRepo.FindByID(req.QuizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	question := &model.Question{
		QuizID: req.QuizID,
		Text:   req.Text,
	}
	if err := s.QuizRepo.CreateQuestion(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *ContentService) UpdateQuestion(id uint, req QuestionRequest) (*model.Question, error) {
	question, err := s.QuizRepo.FindQuestionByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	if _, err := s.QuizRepo.FindByID(req.QuizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	question.QuizID = req.QuizID
	question.Text = req.Text
	if err := s.QuizRepo.UpdateQuestion(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *ContentService) DeleteQuestion(id uint) error {
	if _, err := s.QuizRepo.FindQuestionByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuestionNotFound
		}
		return err
	}
	return s.QuizRepo.DeleteQuestion(id)
}

type OptionRequest struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"is_correct"`
}

func (s *ContentService) CreateOption(questionID uint, req OptionRequest) (*model.Option, error) {
	if _, err := s.QuizRepo.FindQuestionByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	option := &model.Option{
		QuestionID: questionID,
		Text:       req.Text,
		IsCorrect:  req.IsCorrect,
	}
	if err := s.QuizRepo.CreateOption(option); err != nil {
		return nil, err
	}
	return option, nil
}

func (s *ContentService) UpdateOption(id uint, req OptionRequest) (*model.Option, error) {
	option, err := s.QuizRepo.FindOptionByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	option.Text = req.Text
	option.IsCorrect = req.IsCorrect
	if err := s.QuizRepo.UpdateOption(option); err != nil {
		return nil, err
	}
	return option, nil
}

func (s *ContentService) DeleteOption(id uint) error {
	return s.QuizRepo.DeleteOption(id)
}

type FillBlankQuestionRequest struct {
	QuizID        uint   `json:"quiz_id" binding:"required"`
	TextBefore    string `json:"text_before" binding:"required"`
	TextAfter     string `json:"text_after"`
	CorrectAnswer string `json:"correct_answer" binding:"required"`
}

func (s *ContentService) CreateFillBlankQuestion(req FillBlankQuestionRequest) (*model.FillInBlankQuestion, error) {
	if _, err := s.QuizRepo.FindByID(req.QuizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	question := &model.FillInBlankQuestion{
		QuizID:        req.QuizID,
		TextBefore:    req.TextBefore,
		TextAfter:     req.TextAfter,
		CorrectAnswer: req.CorrectAnswer,
	}
	if err := s.QuizRepo.CreateFillBlankQuestion(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *ContentService) UpdateFillBlankQuestion(id uint, req FillBlankQuestionRequest) (*model.FillInBlankQuestion, error) {
	question, err := s.QuizRepo.FindFillBlankQuestionByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	if _, err := s.QuizRepo.FindByID(req.QuizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	question.QuizID = req.QuizID
	question.TextBefore = req.TextBefore
	question.TextAfter = req.TextAfter
	question.CorrectAnswer = req.CorrectAnswer
	if err := s.QuizRepo.UpdateFillBlankQuestion(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *ContentService) DeleteFillBlankQuestion(id uint) error {
	if _, err := s.QuizRepo.FindFillBlankQuestionByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuestionNotFound
		}
		return err
	}
	return s.QuizRepo.DeleteFillBlankQuestion(id)
}

type FillBlankOptionRequest struct {
	Text string `json:"text" binding:"required"`
}

func (s *ContentService) CreateFillBlankOption(questionID uint, req FillBlankOptionRequest) (*model.FillInBlankOption, error) {
	if _, err := s.QuizRepo.FindFillBlankQuestionByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	option := &model.FillInBlankOption{
		FillInBlankQuestionID: questionID,
		Text:                  req.Text,
	}
	if err := s.QuizRepo.CreateFillBlankOption(option); err != nil {
		return nil, err
	}
	return option, nil
}

func (s *ContentService) DeleteFillBlankOption(id uint) error {
	return s.QuizRepo.DeleteFillBlankOption(id)
}

type GroupRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (s *ContentService) CreateGroup(req GroupRequest) (*model.Group, error) {
	group := &model.Group{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.GroupRepo.Create(group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *ContentService) UpdateGroup(id uint, req GroupRequest) (*model.Group, error) {
	group, err := s.GroupRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrGroupNotFound
		}
		return nil, err
	}

	group.Name = req.Name
	group.Description = req.Description
	if err := s.GroupRepo.Update(group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *ContentService) DeleteGroup(id uint) error {
	if _, err := s.GroupRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrGroupNotFound
		}
		return err
	}
	return s.GroupRepo.Delete(id)
}

func (s *ContentService) ListGroups() ([]model.Group, error) {
	return s.GroupRepo.ListAll()
}

func (s *ContentService) ListCategories() ([]model.Category, error) {
	return s.CategoryRepo.ListAll()
}

func (s *ContentService) ListQuizzesByCourse(courseID uint) ([]model.Quiz, error) {
	return s.QuizRepo.ListByCourse(courseID)
}
