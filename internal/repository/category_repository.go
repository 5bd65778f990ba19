package repository

import (
	"lingua_edu_backend/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) Create(category *model.Category) error {
	return r.DB.Create(category).Error
}

func (r *CategoryRepository) Update(category *model.Category) error {
	return r.DB.Save(category).Error
}

// Delete removes the category; dependent courses go with it through
// the ON DELETE CASCADE constraint declared on the association.
func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&model.Category{}, id).Error
}

func (r *CategoryRepository) FindByID(id uint) (*model.Category, error) {
	var category model.Category
	err := r.DB.First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) FindBySlug(slug string) (*model.Category, error) {
	var category model.Category
	err := r.DB.Where("slug = ?", slug).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) ListAll() ([]model.Category, error) {
	var categories []model.Category
	err := r.DB.Order("id").Find(&categories).Error
	return categories, err
}

// ListCourses returns the category's courses, optionally filtered by
// level. An empty level means no filter.
func (r *CategoryRepository) ListCourses(categoryID uint, level string) ([]model.Course, error) {
	var courses []model.Course
	q := r.DB.Where("category_id = ?", categoryID)
	if level != "" {
		q = q.Where("level = ?", level)
	}
	err := q.Order("id").Find(&courses).Error
	return courses, err
}
