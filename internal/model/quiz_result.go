package model

import "time"

// QuizResult is one scored attempt. (user_id, quiz_id) is deliberately
// not unique: repeated submissions accumulate rows and presentation
// picks the first one found.
// swagger:model QuizResult
type QuizResult struct {
	BaseModel
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	QuizID         uint      `gorm:"index;not null" json:"quiz_id"`
	Score          float64   `gorm:"type:decimal(5,2);not null" json:"score"`
	CorrectAnswers int       `gorm:"not null" json:"correct_answers"`
	CompletedAt    time.Time `gorm:"autoCreateTime" json:"completed_at"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}
