package model

type UserRole string

const (
	Student UserRole = "student"
	Admin   UserRole = "admin"
)

// User is keyed by email; there is no separate username.
// swagger:model User
type User struct {
	BaseModel
	FirstName string   `gorm:"size:150" json:"first_name"`
	LastName  string   `gorm:"size:150" json:"last_name"`
	Email     string   `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string   `gorm:"size:100;not null" json:"-"`
	Role      UserRole `gorm:"type:enum('student','admin');default:'student'" json:"role"`
	GroupID   *uint    `gorm:"index" json:"group_id,omitempty"`
	Group     *Group   `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}

func (User) TableName() string {
	return "users"
}
