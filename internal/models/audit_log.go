package models

// Audit actions written by the API.
const (
	ActionProvisionUser        = "PROVISION_USER"
	ActionCompleteRegistration = "COMPLETE_REGISTRATION"
	ActionCreateNamespace      = "CREATE_NAMESPACE"
	ActionUpdateNamespace      = "UPDATE_NAMESPACE"
	ActionDeleteNamespace      = "DELETE_NAMESPACE"
	ActionCreateCategory       = "CREATE_CATEGORY"
	ActionUpdateCategory       = "UPDATE_CATEGORY"
	ActionDeleteCategory       = "DELETE_CATEGORY"
	ActionCreateExpense        = "CREATE_EXPENSE"
	ActionUpdateExpense        = "UPDATE_EXPENSE"
	ActionDeleteExpense        = "DELETE_EXPENSE"
)

// Audited resource types.
const (
	ResourceUser      = "user"
	ResourceNamespace = "namespace"
	ResourceCategory  = "category"
	ResourceExpense   = "expense"
)

// AuditLog records mutating operations on namespaces, categories, expenses
// and users.
type AuditLog struct {
	Base
	UserID       string `gorm:"type:uuid;index" json:"user_id"`
	Action       string `gorm:"not null" json:"action"`
	ResourceType string `gorm:"not null" json:"resource_type"`
	ResourceID   string `gorm:"type:uuid" json:"resource_id"`
	IPAddress    string `json:"ip_address"`
	Changes      string `json:"changes,omitempty"`
}

// All lists every model in dependency order, for auto-migration.
func All() []any {
	return []any{
		&User{},
		&Namespace{},
		&Category{},
		&Expense{},
		&AuditLog{},
	}
}
