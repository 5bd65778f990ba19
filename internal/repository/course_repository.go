package repository

import (
	"lingua_edu_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

func (r *CourseRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&model.Course{}, id).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) FindBySlug(slug string) (*model.Course, error) {
	var course model.Course
	err := r.DB.Where("slug = ?", slug).First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// FindDetailBySlug loads the course with its category and the full
// quiz graph: multiple-choice questions with options and
// fill-in-the-blank questions with options.
func (r *CourseRepository) FindDetailBySlug(slug string) (*model.Course, error) {
	var course model.Course
	err := r.DB.
		Preload("Category").
		Preload("Quizzes").
		Preload("Quizzes.Questions").
		Preload("Quizzes.Questions.Options").
		Preload("Quizzes.FillBlankQuestions").
		Preload("Quizzes.FillBlankQuestions.Options").
		Where("slug = ?", slug).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) List(page, pageSize int) ([]model.Course, int64, error) {
	var courses []model.Course
	var total int64

	if err := r.DB.Model(&model.Course{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.DB.Preload("Category").
		Order("id").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&courses).Error
	return courses, total, err
}

func (r *CourseRepository) ListByIDs(ids []uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Preload("Category").Where("id IN ?", ids).Find(&courses).Error
	return courses, err
}
