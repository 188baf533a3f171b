package models

// DefaultNamespaceName is the name of the namespace every user receives when
// registration completes.
const DefaultNamespaceName = "Default"

// Namespace is a user-owned workspace grouping categories.
type Namespace struct {
	Base
	Name       string     `gorm:"not null;uniqueIndex:idx_namespaces_user_name" json:"name"`
	UserID     string     `gorm:"type:uuid;not null;index;uniqueIndex:idx_namespaces_user_name" json:"user_id"`
	Categories []Category `gorm:"foreignKey:NamespaceID;constraint:OnDelete:CASCADE" json:"categories,omitempty"`
}
