package models

// UserRole is the access level of a user account.
type UserRole string

const (
	RoleSuperAdmin      UserRole = "SUPER_ADMIN"
	RolePropertyOwner   UserRole = "PROPERTY_OWNER"
	RolePropertyManager UserRole = "PROPERTY_MANAGER"
	RoleTenant          UserRole = "TENANT"
)

// Valid reports whether r is one of the defined user roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleSuperAdmin, RolePropertyOwner, RolePropertyManager, RoleTenant:
		return true
	}
	return false
}

// Permission is a single grantable capability.
type Permission string

const (
	PermManageProperties  Permission = "MANAGE_PROPERTIES"
	PermViewReports       Permission = "VIEW_REPORTS"
	PermManageManagers    Permission = "MANAGE_MANAGERS"
	PermViewTenants       Permission = "VIEW_TENANTS"
	PermManageTenants     Permission = "MANAGE_TENANTS"
	PermHandleMaintenance Permission = "HANDLE_MAINTENANCE"
	PermManagePayments    Permission = "MANAGE_PAYMENTS"
	PermViewLease         Permission = "VIEW_LEASE"
	PermSubmitMaintenance Permission = "SUBMIT_MAINTENANCE"
	PermViewPayments      Permission = "VIEW_PAYMENTS"
)

// AllPermissions returns the full permission universe.
func AllPermissions() []Permission {
	return []Permission{
		PermManageProperties,
		PermViewReports,
		PermManageManagers,
		PermViewTenants,
		PermManageTenants,
		PermHandleMaintenance,
		PermManagePayments,
		PermViewLease,
		PermSubmitMaintenance,
		PermViewPayments,
	}
}

// User is an account known to the system.
type User struct {
	UserID          string   `json:"user_id"`
	Email           string   `json:"email"`
	FullName        string   `json:"full_name"`
	PhoneNumber     string   `json:"phone_number"`
	Role            UserRole `json:"role"`
	ProfileImageURL string   `json:"profile_image_url,omitempty"`
	IsActive        bool     `json:"is_active"`
	CreatedAt       int64    `json:"created_at"`

	// Role-dependent extensions.
	ManagedPropertyIDs []string    `json:"managed_property_ids,omitempty"` // property managers
	OwnedPropertyIDs   []string    `json:"owned_property_ids,omitempty"`   // property owners
	TenantInfo         *TenantInfo `json:"tenant_info,omitempty"`          // tenants
}

// TenantInfo is the lease sub-record attached to tenant accounts.
type TenantInfo struct {
	PropertyID      string  `json:"property_id"`
	RoomID          string  `json:"room_id"`
	LeaseStartDate  string  `json:"lease_start_date"`
	LeaseEndDate    string  `json:"lease_end_date"`
	MonthlyRent     float64 `json:"monthly_rent"`
	SecurityDeposit float64 `json:"security_deposit"`
}
