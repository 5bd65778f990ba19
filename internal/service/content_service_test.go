package service

import (
	"testing"

	"lingua_edu_backend/internal/repository"
	"lingua_edu_backend/internal/util"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newContentFixture(t *testing.T) (*ContentService, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	svc := NewContentService(
		repository.NewCategoryRepository(db),
		repository.NewCourseRepository(db),
		repository.NewQuizRepository(db),
		repository.NewGroupRepository(db),
	)
	return svc, mock
}

func TestUpdateQuizRejectsDanglingCourse(t *testing.T) {
	svc, mock := newContentFixture(t)

	mock.ExpectQuery("SELECT \\* FROM `quizzes`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "course_id", "title"}).
			AddRow(5, 1, "Tenses"))
	mock.ExpectQuery("SELECT \\* FROM `courses`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.UpdateQuiz(5, QuizRequest{CourseID: 99, Title: "Tenses"})

	assert.ErrorIs(t, err, util.ErrCourseNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCourseRejectsDanglingCategory(t *testing.T) {
	svc, mock := newContentFixture(t)

	mock.ExpectQuery("SELECT \\* FROM `courses`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "category_id", "title", "slug"}).
			AddRow(3, 1, "English Grammar", "english-grammar"))
	mock.ExpectQuery("SELECT \\* FROM `categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.UpdateCourse(3, CourseRequest{
		Title:      "English Grammar",
		Slug:       "english-grammar",
		CategoryID: 99,
	})

	assert.ErrorIs(t, err, util.ErrCategoryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateQuestionRejectsDanglingQuiz(t *testing.T) {
	svc, mock := newContentFixture(t)

	mock.ExpectQuery("SELECT \\* FROM `questions`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "quiz_id", "text"}).
			AddRow(9, 5, "Pick the right tense"))
	mock.ExpectQuery("SELECT \\* FROM `quizzes`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.UpdateQuestion(9, QuestionRequest{QuizID: 404, Text: "Pick the right tense"})

	assert.ErrorIs(t, err, util.ErrQuizNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
