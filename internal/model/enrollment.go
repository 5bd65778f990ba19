package model

import "time"

// Enrollment links a user to a course. The composite unique index is
// what makes the enroll endpoint idempotent under concurrency.
// swagger:model Enrollment
type Enrollment struct {
	BaseModel
	UserID     uint      `gorm:"uniqueIndex:idx_enrollment_user_course;not null" json:"user_id"`
	CourseID   uint      `gorm:"uniqueIndex:idx_enrollment_user_course;not null" json:"course_id"`
	Course     *Course   `gorm:"constraint:OnDelete:CASCADE" json:"course,omitempty"`
	EnrolledAt time.Time `gorm:"autoCreateTime" json:"enrolled_at"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
