package models

// User is an account holder. Users are provisioned with an email only and
// become usable once registration sets a password and flips IsCompleted.
type User struct {
	Base
	Email       string      `gorm:"uniqueIndex;not null" json:"email"`
	Password    string      `json:"-"`
	IsCompleted bool        `gorm:"not null;default:false" json:"is_completed"`
	Namespaces  []Namespace `gorm:"foreignKey:UserID" json:"namespaces,omitempty"`
}
