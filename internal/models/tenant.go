package models

// Tenant is a person renting (or about to rent) a room.
// PropertyID and RoomID are empty while the tenant is unassigned.
// An empty LeaseEndDate means an open-ended lease.
type Tenant struct {
	TenantID         string `json:"tenant_id"`
	Name             string `json:"name"`
	ContactInfo      string `json:"contact_info"`
	Email            string `json:"email,omitempty"`
	PhoneNumber      string `json:"phone_number,omitempty"`
	PropertyID       string `json:"property_id,omitempty"`
	RoomID           string `json:"room_id,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
	MoveInDate       string `json:"move_in_date,omitempty"`
	LeaseEndDate     string `json:"lease_end_date,omitempty"`
}
