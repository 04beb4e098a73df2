package models

// Role is a named permission bundle. System roles are seeded at startup and
// cannot be deleted; the Super Admin role cannot be edited either.
type Role struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Permissions []Permission `json:"permissions"`
	IsSystem    bool         `json:"is_system"`
	CreatedAt   int64        `json:"created_at"`
}

// HasPermission reports whether the role's own permission set contains p.
// Callers wanting the Super Admin override should go through the role registry.
func (r Role) HasPermission(p Permission) bool {
	for _, perm := range r.Permissions {
		if perm == p {
			return true
		}
	}
	return false
}

// Fixed ids of the seeded system roles.
const (
	RoleIDSuperAdmin      = "role_super_admin"
	RoleIDPropertyOwner   = "role_property_owner"
	RoleIDPropertyManager = "role_property_manager"
	RoleIDTenant          = "role_tenant"
)

// SystemRoles returns fresh copies of the four predefined roles.
func SystemRoles() []Role {
	return []Role{
		{
			ID:          RoleIDSuperAdmin,
			Name:        "Super Admin",
			Description: "Full system access",
			Permissions: AllPermissions(),
			IsSystem:    true,
		},
		{
			ID:          RoleIDPropertyOwner,
			Name:        "Property Owner",
			Description: "Property owner with management rights",
			Permissions: []Permission{
				PermManageProperties,
				PermViewReports,
				PermManageManagers,
				PermViewTenants,
			},
			IsSystem: true,
		},
		{
			ID:          RoleIDPropertyManager,
			Name:        "Property Manager",
			Description: "Property manager with operational rights",
			Permissions: []Permission{
				PermManageTenants,
				PermHandleMaintenance,
				PermManagePayments,
				PermViewReports,
			},
			IsSystem: true,
		},
		{
			ID:          RoleIDTenant,
			Name:        "Tenant",
			Description: "Tenant with basic access rights",
			Permissions: []Permission{
				PermViewLease,
				PermSubmitMaintenance,
				PermViewPayments,
			},
			IsSystem: true,
		},
	}
}
