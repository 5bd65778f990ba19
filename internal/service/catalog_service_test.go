package service

import (
	"testing"
	"time"

	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCategoryStore struct {
	categories []model.Category
	courses    map[uint]map[string][]model.Course // categoryID -> level -> courses
}

func (f *fakeCategoryStore) ListAll() ([]model.Category, error) {
	return f.categories, nil
}

func (f *fakeCategoryStore) FindBySlug(slug string) (*model.Category, error) {
	for i := range f.categories {
		if f.categories[i].Slug == slug {
			return &f.categories[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCategoryStore) ListCourses(categoryID uint, level string) ([]model.Course, error) {
	byLevel, ok := f.courses[categoryID]
	if !ok {
		return []model.Course{}, nil
	}
	if level == "" {
		var all []model.Course
		for _, cs := range byLevel {
			all = append(all, cs...)
		}
		return all, nil
	}
	return byLevel[level], nil
}

type fakeCourseStore struct {
	courses  []model.Course
	detail   *model.Course
	lastPage int
	lastSize int
}

func (f *fakeCourseStore) List(page, pageSize int) ([]model.Course, int64, error) {
	f.lastPage = page
	f.lastSize = pageSize
	return f.courses, int64(len(f.courses)), nil
}

func (f *fakeCourseStore) FindDetailBySlug(slug string) (*model.Course, error) {
	if f.detail == nil || f.detail.Slug != slug {
		return nil, gorm.ErrRecordNotFound
	}
	return f.detail, nil
}

type fakeResultReader struct {
	results map[uint]*model.QuizResult // quizID -> result
}

func (f *fakeResultReader) FirstByUserAndQuiz(userID, quizID uint) (*model.QuizResult, error) {
	return f.results[quizID], nil
}

func TestListCoursesNormalizesPaging(t *testing.T) {
	store := &fakeCourseStore{}
	svc := NewCatalogService(&fakeCategoryStore{}, store, &fakeResultReader{})

	cases := []struct {
		name         string
		page, size   int
		wantPage     int
		wantPageSize int
	}{
		{"defaults", 0, 0, 1, util.DefaultPageSize},
		{"negative page", -3, 20, 1, 20},
		{"oversized page size capped", 2, 500, 2, util.MaxPageSize},
		{"in range untouched", 4, 25, 4, 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, page, pageSize, err := svc.ListCourses(tc.page, tc.size)
			require.NoError(t, err)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantPageSize, pageSize)
			assert.Equal(t, tc.wantPage, store.lastPage)
			assert.Equal(t, tc.wantPageSize, store.lastSize)
		})
	}
}

func TestGetCategoryDetailUnknownSlug(t *testing.T) {
	svc := NewCatalogService(&fakeCategoryStore{}, &fakeCourseStore{}, &fakeResultReader{})

	_, err := svc.GetCategoryDetail("missing", "")

	assert.ErrorIs(t, err, util.ErrCategoryNotFound)
}

func TestGetCategoryDetailLevelFilter(t *testing.T) {
	category := model.Category{Name: "Grammar", Slug: "grammar"}
	category.ID = 1
	b1 := model.Course{Title: "Conditionals", Level: model.LevelB1}

	store := &fakeCategoryStore{
		categories: []model.Category{category},
		courses: map[uint]map[string][]model.Course{
			1: {"b1": {b1}},
		},
	}
	svc := NewCatalogService(store, &fakeCourseStore{}, &fakeResultReader{})

	detail, err := svc.GetCategoryDetail("grammar", "b1")
	require.NoError(t, err)
	require.Len(t, detail.Courses, 1)
	assert.Equal(t, "Conditionals", detail.Courses[0].Title)

	// An unknown level matches nothing rather than erroring.
	detail, err = svc.GetCategoryDetail("grammar", "c2")
	require.NoError(t, err)
	assert.Empty(t, detail.Courses)
}

func detailCourse() *model.Course {
	quiz := model.Quiz{Title: "Tenses"}
	quiz.ID = 11
	course := &model.Course{
		Title:   "English Grammar",
		Slug:    "english-grammar",
		Quizzes: []model.Quiz{quiz},
	}
	course.ID = 3
	return course
}

func TestGetCourseDetailAnonymous(t *testing.T) {
	svc := NewCatalogService(&fakeCategoryStore{}, &fakeCourseStore{detail: detailCourse()}, &fakeResultReader{})

	detail, err := svc.GetCourseDetail("english-grammar", 0)

	require.NoError(t, err)
	require.Len(t, detail.Quizzes, 1)
	assert.False(t, detail.Quizzes[0].IsCompleted)
	assert.Nil(t, detail.Quizzes[0].Result)
	assert.NotNil(t, detail.Quizzes[0].Questions)
	assert.NotNil(t, detail.Quizzes[0].FillBlankQuestions)
}

func TestGetCourseDetailAnnotatesCompletedQuiz(t *testing.T) {
	result := &model.QuizResult{
		UserID:         5,
		QuizID:         11,
		Score:          66.67,
		CorrectAnswers: 2,
		CompletedAt:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	reader := &fakeResultReader{results: map[uint]*model.QuizResult{11: result}}
	svc := NewCatalogService(&fakeCategoryStore{}, &fakeCourseStore{detail: detailCourse()}, reader)

	detail, err := svc.GetCourseDetail("english-grammar", 5)

	require.NoError(t, err)
	require.Len(t, detail.Quizzes, 1)
	assert.True(t, detail.Quizzes[0].IsCompleted)
	require.NotNil(t, detail.Quizzes[0].Result)
	assert.Equal(t, 66.67, detail.Quizzes[0].Result.Score)
	assert.Equal(t, 2, detail.Quizzes[0].Result.CorrectAnswers)
}

func TestGetCourseDetailUnknownSlug(t *testing.T) {
	svc := NewCatalogService(&fakeCategoryStore{}, &fakeCourseStore{}, &fakeResultReader{})

	_, err := svc.GetCourseDetail("missing", 0)

	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}
