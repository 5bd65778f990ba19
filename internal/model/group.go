package model

// Group is an optional cohort a user may belong to.
// swagger:model Group
type Group struct {
	BaseModel
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Users       []User `json:"-"`
}

func (Group) TableName() string {
	return "groups"
}
