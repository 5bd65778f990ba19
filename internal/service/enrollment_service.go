package service

import (
	"errors"

	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/internal/util"

	"gorm.io/gorm"
)

type EnrollmentStore interface {
	GetOrCreate(userID, courseID uint) (bool, error)
	ListCourseIDsByUser(userID uint) ([]uint, error)
}

type CourseFinder interface {
	FindBySlug(slug string) (*model.Course, error)
	ListByIDs(ids []uint) ([]model.Course, error)
}

type EnrollmentService struct {
	EnrollmentRepo EnrollmentStore
	CourseRepo     CourseFinder
}

func NewEnrollmentService(enrollmentRepo EnrollmentStore, courseRepo CourseFinder) *EnrollmentService {
	return &EnrollmentService{
		EnrollmentRepo: enrollmentRepo,
		CourseRepo:     courseRepo,
	}
}

// Enroll registers the user in the course identified by slug. The
// operation is idempotent: created reports whether a new enrollment
// row was actually inserted.
func (s *EnrollmentService) Enroll(userID uint, slug string) (created bool, err error) {
	course, err := s.CourseRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, util.ErrCourseNotFound
		}
		return false, err
	}
	return s.EnrollmentRepo.GetOrCreate(userID, course.ID)
}

// ListUserCourses returns the courses the user is enrolled in.
func (s *EnrollmentService) ListUserCourses(userID uint) ([]model.Course, error) {
	ids, err := s.EnrollmentRepo.ListCourseIDsByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []model.Course{}, nil
	}
	return s.CourseRepo.ListByIDs(ids)
}
