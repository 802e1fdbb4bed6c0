// Package rbac is the single source of truth for role checks. Handlers and
// the AI context builder both consult it, so role literals live nowhere else.
package rbac

import (
	"victory-pos/internal/models"
)

// Field is a data attribute whose visibility depends on the viewer's role.
type Field string

const (
	FieldBuyPrice Field = "buy_price"
	FieldProfit   Field = "profit"
)

// Action is a state mutation gated by role.
type Action string

const (
	ActionManageLaptops Action = "manage_laptops"
	ActionDeleteLaptop  Action = "delete_laptop"
	ActionCheckout      Action = "checkout"
	ActionManageUsers   Action = "manage_users"
	ActionExportBackup  Action = "export_backup"
)

// CanView reports whether a role may see a sensitive field. Cost and profit
// figures are reserved for OWNER and SUPER_ADMIN; ADMIN only ever sees
// sell-side data.
func CanView(role models.Role, field Field) bool {
	switch field {
	case FieldBuyPrice, FieldProfit:
		return role == models.RoleOwner || role == models.RoleSuperAdmin
	default:
		return true
	}
}

// CanMutate reports whether a role may perform an action.
func CanMutate(role models.Role, action Action) bool {
	switch action {
	case ActionManageUsers:
		return role == models.RoleSuperAdmin
	case ActionDeleteLaptop, ActionExportBackup:
		return role == models.RoleOwner || role == models.RoleSuperAdmin
	case ActionManageLaptops, ActionCheckout:
		return role == models.RoleSuperAdmin || role == models.RoleOwner || role == models.RoleAdmin
	default:
		return false
	}
}
