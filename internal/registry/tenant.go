package registry

import (
	"sort"
	"sync"

	"tenanta/backend/internal/models"
)

// TenantRegistry owns tenant records. It consults the property registry to
// validate property/room references on writes.
type TenantRegistry struct {
	mu         sync.RWMutex
	tenants    map[string]models.Tenant
	properties *PropertyRegistry
	events     EventPublisher
}

func NewTenantRegistry(properties *PropertyRegistry, events EventPublisher) *TenantRegistry {
	if events == nil {
		events = NopPublisher{}
	}
	return &TenantRegistry{
		tenants:    make(map[string]models.Tenant),
		properties: properties,
		events:     events,
	}
}

// validateReferences checks the optional property/room links. The property
// registry lock is taken through its read methods, so callers must not hold
// the tenant lock yet.
func (r *TenantRegistry) validateReferences(t models.Tenant) error {
	if t.PropertyID != "" {
		if _, ok := r.properties.Property(t.PropertyID); !ok {
			return ErrPropertyNotFound
		}
	}
	if t.RoomID != "" {
		room, ok := r.properties.Room(t.RoomID)
		if !ok {
			return ErrRoomNotFound
		}
		if t.PropertyID != "" && room.PropertyID != t.PropertyID {
			return ErrRoomNotFound
		}
	}
	return nil
}

func (r *TenantRegistry) AddTenant(t models.Tenant) (models.Tenant, error) {
	if err := r.validateReferences(t); err != nil {
		return models.Tenant{}, err
	}
	r.mu.Lock()
	if t.RoomID != "" && r.roomOccupiedLocked(t.RoomID, t.TenantID) {
		r.mu.Unlock()
		return models.Tenant{}, ErrRoomOccupied
	}
	if t.TenantID == "" {
		t.TenantID = models.NewID("tenant")
	} else if _, ok := r.tenants[t.TenantID]; ok {
		r.mu.Unlock()
		return models.Tenant{}, ErrAlreadyExists
	}
	r.tenants[t.TenantID] = t
	r.mu.Unlock()
	r.events.Publish(newEvent("tenant", models.ActionCreated, t.TenantID))
	return t, nil
}

func (r *TenantRegistry) UpdateTenant(id string, t models.Tenant) (models.Tenant, error) {
	if err := r.validateReferences(t); err != nil {
		return models.Tenant{}, err
	}
	r.mu.Lock()
	if _, ok := r.tenants[id]; !ok {
		r.mu.Unlock()
		return models.Tenant{}, ErrNotFound
	}
	if t.RoomID != "" && r.roomOccupiedLocked(t.RoomID, id) {
		r.mu.Unlock()
		return models.Tenant{}, ErrRoomOccupied
	}
	t.TenantID = id
	r.tenants[id] = t
	r.mu.Unlock()
	r.events.Publish(newEvent("tenant", models.ActionUpdated, id))
	return t, nil
}

// DeleteTenant removes a tenant. No-op if the id is unknown.
func (r *TenantRegistry) DeleteTenant(id string) {
	r.mu.Lock()
	_, ok := r.tenants[id]
	delete(r.tenants, id)
	r.mu.Unlock()
	if ok {
		r.events.Publish(newEvent("tenant", models.ActionDeleted, id))
	}
}

func (r *TenantRegistry) Tenant(id string) (models.Tenant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tenants[id]
	return t, ok
}

func (r *TenantRegistry) Tenants() []models.Tenant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Tenant, 0, len(r.tenants))
	for _, t := range r.tenants {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TenantID < out[j].TenantID })
	return out
}

// TenantsForProperty returns all tenants attached to the given property.
func (r *TenantRegistry) TenantsForProperty(propertyID string) []models.Tenant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Tenant
	for _, t := range r.tenants {
		if t.PropertyID == propertyID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TenantID < out[j].TenantID })
	return out
}

// AssignTenantToRoom places the tenant into the room, rejecting rooms that
// are unknown or already taken by another tenant. The tenant's property
// reference follows the room.
func (r *TenantRegistry) AssignTenantToRoom(tenantID, roomID string) (models.Tenant, error) {
	room, ok := r.properties.Room(roomID)
	if !ok {
		return models.Tenant{}, ErrRoomNotFound
	}
	r.mu.Lock()
	t, ok := r.tenants[tenantID]
	if !ok {
		r.mu.Unlock()
		return models.Tenant{}, ErrNotFound
	}
	if r.roomOccupiedLocked(roomID, tenantID) {
		r.mu.Unlock()
		return models.Tenant{}, ErrRoomOccupied
	}
	t.RoomID = roomID
	t.PropertyID = room.PropertyID
	r.tenants[tenantID] = t
	r.mu.Unlock()
	r.events.Publish(newEvent("tenant", models.ActionUpdated, tenantID))
	return t, nil
}

func (r *TenantRegistry) roomOccupiedLocked(roomID, excludeTenantID string) bool {
	for _, t := range r.tenants {
		if t.RoomID == roomID && t.TenantID != excludeTenantID {
			return true
		}
	}
	return false
}

// IsRoomOccupied reports whether any tenant is assigned to the room.
func (r *TenantRegistry) IsRoomOccupied(roomID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.roomOccupiedLocked(roomID, "")
}

// DetachProperty clears property and room references of tenants living in
// the deleted property. Part of the TenantDetacher cascade.
func (r *TenantRegistry) DetachProperty(propertyID string) {
	r.mu.Lock()
	var touched []string
	for id, t := range r.tenants {
		if t.PropertyID == propertyID {
			t.PropertyID = ""
			t.RoomID = ""
			r.tenants[id] = t
			touched = append(touched, id)
		}
	}
	r.mu.Unlock()
	for _, id := range touched {
		r.events.Publish(newEvent("tenant", models.ActionUpdated, id))
	}
}

// DetachRoom clears the room reference of the tenant assigned to the
// deleted room.
func (r *TenantRegistry) DetachRoom(roomID string) {
	r.mu.Lock()
	var touched []string
	for id, t := range r.tenants {
		if t.RoomID == roomID {
			t.RoomID = ""
			r.tenants[id] = t
			touched = append(touched, id)
		}
	}
	r.mu.Unlock()
	for _, id := range touched {
		r.events.Publish(newEvent("tenant", models.ActionUpdated, id))
	}
}
