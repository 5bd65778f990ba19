package repository

import (
	"lingua_edu_backend/internal/model"

	"gorm.io/gorm"
)

type GroupRepository struct {
	DB *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{DB: db}
}

func (r *GroupRepository) Create(group *model.Group) error {
	return r.DB.Create(group).Error
}

func (r *GroupRepository) Update(group *model.Group) error {
	return r.DB.Save(group).Error
}

func (r *GroupRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&model.Group{}, id).Error
}

func (r *GroupRepository) FindByID(id uint) (*model.Group, error) {
	var group model.Group
	err := r.DB.First(&group, id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepository) ListAll() ([]model.Group, error) {
	var groups []model.Group
	err := r.DB.Order("id").Find(&groups).Error
	return groups, err
}
