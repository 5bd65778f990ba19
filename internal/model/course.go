package model

type CourseLevel string

const (
	LevelA1   CourseLevel = "a1"    // Elementary
	LevelA2   CourseLevel = "a2"    // Pre-Intermediate
	LevelB1   CourseLevel = "b1"    // Intermediate
	LevelB1B2 CourseLevel = "b1-b2" // Upper-Intermediate
	LevelB2   CourseLevel = "b2"    // Pre-Advanced
)

// ValidLevel reports whether s is one of the CEFR level choices.
func ValidLevel(s string) bool {
	switch CourseLevel(s) {
	case LevelA1, LevelA2, LevelB1, LevelB1B2, LevelB2:
		return true
	}
	return false
}

// swagger:model Course
type Course struct {
	BaseModel
	Title       string      `gorm:"size:255;not null" json:"title"`
	Slug        string      `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	CategoryID  uint        `gorm:"index;not null" json:"category_id"`
	Category    *Category   `json:"category,omitempty"`
	Level       CourseLevel `gorm:"size:10;default:'a1'" json:"level"`
	Image       string      `gorm:"size:255" json:"image"`
	Description string      `gorm:"type:text" json:"description"`
	Content     string      `gorm:"type:longtext" json:"content"` // rich-text HTML
	Quizzes     []Quiz      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Course) TableName() string {
	return "courses"
}
