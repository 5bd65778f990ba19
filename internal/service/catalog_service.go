package service

import (
	"errors"
	"time"

	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/internal/util"

	"gorm.io/gorm"
)

type CategoryStore interface {
	ListAll() ([]model.Category, error)
	FindBySlug(slug string) (*model.Category, error)
	ListCourses(categoryID uint, level string) ([]model.Course, error)
}

type CourseStore interface {
	List(page, pageSize int) ([]model.Course, int64, error)
	FindDetailBySlug(slug string) (*model.Course, error)
}

// ResultReader looks up a user's stored attempt for a quiz.
type ResultReader interface {
	FirstByUserAndQuiz(userID, quizID uint) (*model.QuizResult, error)
}

// CatalogService is the read model: category and course listings plus
// the course detail view with per-user quiz annotations.
type CatalogService struct {
	CategoryRepo CategoryStore
	CourseRepo   CourseStore
	ResultRepo   ResultReader
}

func NewCatalogService(categoryRepo CategoryStore, courseRepo CourseStore, resultRepo ResultReader) *CatalogService {
	return &CatalogService{
		CategoryRepo: categoryRepo,
		CourseRepo:   courseRepo,
		ResultRepo:   resultRepo,
	}
}

type CategoryDetail struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Description string         `json:"description"`
	Courses     []model.Course `json:"courses"`
}

type QuizResultView struct {
	Score          float64   `json:"score"`
	CorrectAnswers int       `json:"correct_answers"`
	CompletedAt    time.Time `json:"completed_at"`
}

type QuizView struct {
	ID                 uint                        `json:"id"`
	Title              string                      `json:"title"`
	Description        string                      `json:"description"`
	CreatedAt          time.Time                   `json:"created_at"`
	Result             *QuizResultView             `json:"result"`
	IsCompleted        bool                        `json:"is_completed"`
	Questions          []model.Question            `json:"questions"`
	FillBlankQuestions []model.FillInBlankQuestion `json:"fill_blank_questions"`
}

type CourseDetail struct {
	ID          uint              `json:"id"`
	Title       string            `json:"title"`
	Slug        string            `json:"slug"`
	Level       model.CourseLevel `json:"level"`
	Image       string            `json:"image"`
	Category    *model.Category   `json:"category"`
	Description string            `json:"description"`
	Content     string            `json:"content"`
	Quizzes     []QuizView        `json:"quizzes"`
}

func (s *CatalogService) ListCategories() ([]model.Category, error) {
	return s.CategoryRepo.ListAll()
}

// GetCategoryDetail returns the category with its courses, optionally
// filtered by level. An unknown level simply matches nothing, the way
// the listing has always behaved.
func (s *CatalogService) GetCategoryDetail(slug, level string) (*CategoryDetail, error) {
	category, err := s.CategoryRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCategoryNotFound
		}
		return nil, err
	}

	courses, err := s.CategoryRepo.ListCourses(category.ID, level)
	if err != nil {
		return nil, err
	}

	return &CategoryDetail{
		ID:          category.ID,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
		Courses:     courses,
	}, nil
}

// ListCourses pages through all courses. Page size defaults to 10 and
// is capped at 100.
func (s *CatalogService) ListCourses(page, pageSize int) ([]model.Course, int64, int, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = util.DefaultPageSize
	}
	if pageSize > util.MaxPageSize {
		pageSize = util.MaxPageSize
	}

	courses, total, err := s.CourseRepo.List(page, pageSize)
	return courses, total, page, pageSize, err
}

// GetCourseDetail builds the course detail view. A zero userID means
// an anonymous caller: annotations come back false/nil. For an
// authenticated caller each quiz is annotated with whether a result
// row exists and, if so, the first one the store returns — ordering
// across multiple attempts is deliberately unspecified.
func (s *CatalogService) GetCourseDetail(slug string, userID uint) (*CourseDetail, error) {
	course, err := s.CourseRepo.FindDetailBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	quizzes := make([]QuizView, 0, len(course.Quizzes))
	for i := range course.Quizzes {
		quiz := &course.Quizzes[i]

		view := QuizView{
			ID:                 quiz.ID,
			Title:              quiz.Title,
			Description:        quiz.Description,
			CreatedAt:          quiz.CreatedAt,
			Questions:          quiz.Questions,
			FillBlankQuestions: quiz.FillBlankQuestions,
		}
		if view.Questions == nil {
			view.Questions = []model.Question{}
		}
		if view.FillBlankQuestions == nil {
			view.FillBlankQuestions = []model.FillInBlankQuestion{}
		}

		if userID != 0 {
			result, err := s.ResultRepo.FirstByUserAndQuiz(userID, quiz.ID)
			if err != nil {
				return nil, err
			}
			if result != nil {
				view.IsCompleted = true
				view.Result = &QuizResultView{
					Score:          result.Score,
					CorrectAnswers: result.CorrectAnswers,
					CompletedAt:    result.CompletedAt,
				}
			}
		}

		quizzes = append(quizzes, view)
	}

	return &CourseDetail{
		ID:          course.ID,
		Title:       course.Title,
		Slug:        course.Slug,
		Level:       course.Level,
		Image:       course.Image,
		Category:    course.Category,
		Description: course.Description,
		Content:     course.Content,
		Quizzes:     quizzes,
	}, nil
}
