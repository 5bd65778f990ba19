package model

// Quiz owns two independent question collections: multiple-choice
// questions and fill-in-the-blank questions.
// swagger:model Quiz
type Quiz struct {
	BaseModel
	CourseID           uint                  `gorm:"index;not null" json:"course_id"`
	Title              string                `gorm:"size:255;not null" json:"title"`
	Description        string                `gorm:"type:text" json:"description"`
	Questions          []Question            `gorm:"constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	FillBlankQuestions []FillInBlankQuestion `gorm:"constraint:OnDelete:CASCADE" json:"fill_blank_questions,omitempty"`
	Results            []QuizResult          `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
