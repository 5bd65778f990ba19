package repository

import (
	"errors"
	"lingua_edu_backend/internal/model"

	"gorm.io/gorm"
)

type QuizResultRepository struct {
	DB *gorm.DB
}

func NewQuizResultRepository(db *gorm.DB) *QuizResultRepository {
	return &QuizResultRepository{DB: db}
}

func (r *QuizResultRepository) Create(result *model.QuizResult) error {
	return r.DB.Create(result).Error
}

// FirstByUserAndQuiz returns the first stored attempt for the pair,
// or nil when none exists. No ordering is applied: with multiple
// attempts the row returned is whichever the store yields first.
func (r *QuizResultRepository) FirstByUserAndQuiz(userID, quizID uint) (*model.QuizResult, error) {
	var result model.QuizResult
	err := r.DB.Where("user_id = ? AND quiz_id = ?", userID, quizID).First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}
