package controller

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/internal/service"
	"lingua_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memoryEnrollmentStore struct {
	rows map[[2]uint]bool
}

func (s *memoryEnrollmentStore) GetOrCreate(userID, courseID uint) (bool, error) {
	key := [2]uint{userID, courseID}
	if s.rows[key] {
		return false, nil
	}
	s.rows[key] = true
	return true, nil
}

func (s *memoryEnrollmentStore) ListCourseIDsByUser(userID uint) ([]uint, error) {
	var ids []uint
	for key := range s.rows {
		if key[0] == userID {
			ids = append(ids, key[1])
		}
	}
	return ids, nil
}

type memoryCourseFinder struct {
	course *model.Course
}

func (s *memoryCourseFinder) FindBySlug(slug string) (*model.Course, error) {
	if s.course == nil || s.course.Slug != slug {
		return nil, gorm.ErrRecordNotFound
	}
	return s.course, nil
}

func (s *memoryCourseFinder) ListByIDs(ids []uint) ([]model.Course, error) {
	return []model.Course{*s.course}, nil
}

type memoryQuizStore struct {
	quiz *model.Quiz
}

func (s *memoryQuizStore) FindForScoring(id uint) (*model.Quiz, error) {
	if s.quiz == nil || s.quiz.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return s.quiz, nil
}

type memoryResultWriter struct {
	results []*model.QuizResult
}

func (s *memoryResultWriter) Create(result *model.QuizResult) error {
	result.ID = uint(len(s.results) + 1)
	s.results = append(s.results, result)
	return nil
}

func asUser(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user", &util.Claims{UserID: userID, Role: model.Student})
		c.Next()
	}
}

func newCourseRouter() (*gin.Engine, *memoryResultWriter) {
	gin.SetMode(gin.TestMode)

	course := &model.Course{Slug: "english-grammar"}
	course.ID = 3

	q1 := model.Question{Options: []model.Option{}}
	q1.ID = 1
	correct := model.Option{IsCorrect: true}
	correct.ID = 10
	wrong := model.Option{IsCorrect: false}
	wrong.ID = 11
	q1.Options = []model.Option{correct, wrong}

	quiz := &model.Quiz{Questions: []model.Question{q1}}
	quiz.ID = 7

	writer := &memoryResultWriter{}
	enrollmentService := service.NewEnrollmentService(
		&memoryEnrollmentStore{rows: map[[2]uint]bool{}},
		&memoryCourseFinder{course: course},
	)
	quizService := service.NewQuizService(&memoryQuizStore{quiz: quiz}, writer)
	courseController := NewCourseController(nil, enrollmentService, quizService)

	r := gin.New()
	r.POST("/enroll/:slug/", asUser(5), courseController.Enroll)
	r.POST("/course/:slug/submit-quiz", asUser(5), courseController.SubmitQuiz)
	return r, writer
}

func TestEnrollCreatedThenAlreadyEnrolled(t *testing.T) {
	r, _ := newCourseRouter()

	w := postJSON(r, "/enroll/english-grammar/", "")
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Message string `json:"message"`
		Success bool   `json:"success"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Enrollment successful", body.Message)

	w = postJSON(r, "/enroll/english-grammar/", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Already enrolled", body.Message)
}

func TestEnrollUnknownCourse404(t *testing.T) {
	r, _ := newCourseRouter()

	w := postJSON(r, "/enroll/missing/", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitQuizReturnsStoredResult(t *testing.T) {
	r, writer := newCourseRouter()

	w := postJSON(r, "/course/english-grammar/submit-quiz",
		`{"quiz":7,"answers":[{"question":1,"option":10}]}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		QuizResultID   uint    `json:"quiz_result_id"`
		Score          float64 `json:"score"`
		CorrectAnswers int     `json:"correct_answers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, uint(1), body.QuizResultID)
	assert.Equal(t, 100.0, body.Score)
	assert.Equal(t, 1, body.CorrectAnswers)
	assert.Len(t, writer.results, 1)
	assert.Equal(t, uint(5), writer.results[0].UserID)
}

func TestSubmitQuizUnknownQuizFieldError(t *testing.T) {
	r, _ := newCourseRouter()

	w := postJSON(r, "/course/english-grammar/submit-quiz", `{"quiz":404,"answers":[]}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "invalid_quiz_id", body["quiz"])
}

func TestSubmitQuizInvalidReference400(t *testing.T) {
	r, writer := newCourseRouter()

	w := postJSON(r, "/course/english-grammar/submit-quiz",
		`{"quiz":7,"answers":[{"question":99,"option":10}]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, writer.results)
}

func TestSubmitQuizMissingAnswersFieldScoresZero(t *testing.T) {
	r, _ := newCourseRouter()

	w := postJSON(r, "/course/english-grammar/submit-quiz", `{"quiz":7}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `"score":0`))
}
