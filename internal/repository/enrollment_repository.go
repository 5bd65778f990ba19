package repository

import (
	"lingua_edu_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

// GetOrCreate inserts the (user, course) pair with a single
// conditional insert. The unique index absorbs the race: a concurrent
// duplicate becomes a no-op instead of an error, and RowsAffected
// tells the two cases apart.
func (r *EnrollmentRepository) GetOrCreate(userID, courseID uint) (bool, error) {
	enrollment := &model.Enrollment{
		UserID:   userID,
		CourseID: courseID,
	}
	res := r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(enrollment)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *EnrollmentRepository) ListCourseIDsByUser(userID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.Enrollment{}).
		Where("user_id = ?", userID).
		Pluck("course_id", &ids).Error
	return ids, err
}
