package models

// Category is a named grouping of expenses inside one namespace.
type Category struct {
	Base
	Name        string    `gorm:"not null;uniqueIndex:idx_categories_namespace_name" json:"name"`
	NamespaceID string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_categories_namespace_name" json:"namespace_id"`
	Expenses    []Expense `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"expenses,omitempty"`
}
