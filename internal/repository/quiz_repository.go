package repository

import (
	"lingua_edu_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

// FindForScoring loads the quiz with both question sets and all their
// options, so the scorer can resolve every answer without further
// round-trips.
func (r *QuizRepository) FindForScoring(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.
		Preload("Questions").
		Preload("Questions.Options").
		Preload("FillBlankQuestions").
		Preload("FillBlankQuestions.Options").
		First(&quiz, id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.First(&quiz, id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) Update(quiz *model.Quiz) error {
	return r.DB.Save(quiz).Error
}

func (r *QuizRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&model.Quiz{}, id).Error
}

func (r *QuizRepository) ListByCourse(courseID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("course_id = ?", courseID).Order("id").Find(&quizzes).Error
	return quizzes, err
}

// Multiple-choice question and option management (admin surface).

func (r *QuizRepository) CreateQuestion(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *QuizRepository) UpdateQuestion(q *model.Question) error {
	return r.DB.Save(q).Error
}

func (r *QuizRepository) DeleteQuestion(id uint) error {
	return r.DB.Unscoped().Delete(&model.Question{}, id).Error
}

func (r *QuizRepository) FindQuestionByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, id).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuizRepository) CreateOption(o *model.Option) error {
	return r.DB.Create(o).Error
}

func (r *QuizRepository) UpdateOption(o *model.Option) error {
	return r.DB.Save(o).Error
}

func (r *QuizRepository) DeleteOption(id uint) error {
	return r.DB.Unscoped().Delete(&model.Option{}, id).Error
}

func (r *QuizRepository) FindOptionByID(id uint) (*model.Option, error) {
	var o model.Option
	err := r.DB.First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Fill-in-the-blank question and option management.

func (r *QuizRepository) CreateFillBlankQuestion(q *model.FillInBlankQuestion) error {
	return r.DB.Create(q).Error
}

func (r *QuizRepository) UpdateFillBlankQuestion(q *model.FillInBlankQuestion) error {
	return r.DB.Save(q).Error
}

func (r *QuizRepository) DeleteFillBlankQuestion(id uint) error {
	return r.DB.Unscoped().Delete(&model.FillInBlankQuestion{}, id).Error
}

func (r *QuizRepository) FindFillBlankQuestionByID(id uint) (*model.FillInBlankQuestion, error) {
	var q model.FillInBlankQuestion
	err := r.DB.First(&q, id).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuizRepository) CreateFillBlankOption(o *model.FillInBlankOption) error {
	return r.DB.Create(o).Error
}

func (r *QuizRepository) DeleteFillBlankOption(id uint) error {
	return r.DB.Unscoped().Delete(&model.FillInBlankOption{}, id).Error
}
