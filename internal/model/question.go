package model

// Question is a multiple-choice question. Zero, one or many of its
// options may carry the correct flag; the model does not enforce
// exactly one.
// swagger:model Question
type Question struct {
	BaseModel
	QuizID  uint     `gorm:"index;not null" json:"quiz_id"`
	Text    string   `gorm:"size:500;not null" json:"text"`
	Options []Option `gorm:"constraint:OnDelete:CASCADE" json:"options,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

// swagger:model Option
type Option struct {
	BaseModel
	QuestionID uint   `gorm:"index;not null" json:"question_id"`
	Text       string `gorm:"size:255;not null" json:"text"`
	IsCorrect  bool   `gorm:"default:false" json:"is_correct"`
}

func (Option) TableName() string {
	return "options"
}
