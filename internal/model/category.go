package model

// swagger:model Category
type Category struct {
	BaseModel
	Name        string   `gorm:"size:255;not null" json:"name"`
	Slug        string   `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Description string   `gorm:"type:text" json:"description"`
	Courses     []Course `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Category) TableName() string {
	return "categories"
}
