// Package registry implements the in-memory entity management layer:
// id-keyed collections with CRUD and derived queries for properties, rooms,
// tenants, users, roles and complaints. State lives for the process
// lifetime only; every committed mutation is announced to an EventPublisher
// so connected clients can re-read.
package registry

// Set bundles the five registries. One Set is built at startup and handed
// to every consumer; there is no ambient global state.
type Set struct {
	Properties *PropertyRegistry
	Tenants    *TenantRegistry
	Users      *UserRegistry
	Roles      *RoleRegistry
	Complaints *ComplaintRegistry
}

// New builds a fully wired registry set. A nil publisher disables events.
func New(events EventPublisher) *Set {
	if events == nil {
		events = NopPublisher{}
	}
	properties := NewPropertyRegistry(events)
	tenants := NewTenantRegistry(properties, events)
	properties.SetTenantDetacher(tenants)
	return &Set{
		Properties: properties,
		Tenants:    tenants,
		Users:      NewUserRegistry(events),
		Roles:      NewRoleRegistry(events),
		Complaints: NewComplaintRegistry(events),
	}
}
