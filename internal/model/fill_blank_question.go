package model

// FillInBlankQuestion renders as "<TextBefore> ____ <TextAfter>".
// Correctness of a picked option is exact, case-sensitive string
// equality of the option text against CorrectAnswer.
// swagger:model FillInBlankQuestion
type FillInBlankQuestion struct {
	BaseModel
	QuizID        uint                `gorm:"index;not null" json:"quiz_id"`
	TextBefore    string              `gorm:"size:500;not null" json:"text_before"`
	TextAfter     string              `gorm:"size:500" json:"text_after"`
	CorrectAnswer string              `gorm:"size:255;not null" json:"correct_answer"`
	Options       []FillInBlankOption `gorm:"constraint:OnDelete:CASCADE" json:"options,omitempty"`
}

func (FillInBlankQuestion) TableName() string {
	return "fill_in_blank_questions"
}

// FillInBlankOption carries no correctness flag of its own.
// swagger:model FillInBlankOption
type FillInBlankOption struct {
	BaseModel
	FillInBlankQuestionID uint   `gorm:"index;not null" json:"fill_in_blank_question_id"`
	Text                  string `gorm:"size:255;not null" json:"text"`
}

func (FillInBlankOption) TableName() string {
	return "fill_in_blank_options"
}
