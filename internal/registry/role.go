package registry

import (
	"sort"
	"sync"
	"time"

	"tenanta/backend/internal/models"
)

// RoleRegistry owns role definitions. The four system roles are seeded at
// construction; they cannot be deleted, and Super Admin cannot be edited.
type RoleRegistry struct {
	mu     sync.RWMutex
	roles  map[string]models.Role
	events EventPublisher
}

func NewRoleRegistry(events EventPublisher) *RoleRegistry {
	if events == nil {
		events = NopPublisher{}
	}
	r := &RoleRegistry{
		roles:  make(map[string]models.Role),
		events: events,
	}
	now := time.Now().UnixMilli()
	for _, role := range models.SystemRoles() {
		role.CreatedAt = now
		r.roles[role.ID] = role
	}
	return r
}

// AddRole stores a custom role. Role names are unique.
func (r *RoleRegistry) AddRole(role models.Role) (models.Role, error) {
	r.mu.Lock()
	for _, existing := range r.roles {
		if existing.Name == role.Name {
			r.mu.Unlock()
			return models.Role{}, ErrDuplicateName
		}
	}
	if role.ID == "" {
		role.ID = models.NewID("role")
	} else if _, ok := r.roles[role.ID]; ok {
		r.mu.Unlock()
		return models.Role{}, ErrAlreadyExists
	}
	role.IsSystem = false
	if role.CreatedAt == 0 {
		role.CreatedAt = time.Now().UnixMilli()
	}
	r.roles[role.ID] = role
	r.mu.Unlock()
	r.events.Publish(newEvent("role", models.ActionCreated, role.ID))
	return role, nil
}

// UpdateRole replaces the role stored under id. The Super Admin role is
// immutable, and the stored IsSystem flag always wins over the caller's.
func (r *RoleRegistry) UpdateRole(id string, role models.Role) (models.Role, error) {
	if id == models.RoleIDSuperAdmin {
		return models.Role{}, ErrProtectedRole
	}
	r.mu.Lock()
	stored, ok := r.roles[id]
	if !ok {
		r.mu.Unlock()
		return models.Role{}, ErrNotFound
	}
	for _, existing := range r.roles {
		if existing.ID != id && existing.Name == role.Name {
			r.mu.Unlock()
			return models.Role{}, ErrDuplicateName
		}
	}
	role.ID = id
	role.IsSystem = stored.IsSystem
	role.CreatedAt = stored.CreatedAt
	r.roles[id] = role
	r.mu.Unlock()
	r.events.Publish(newEvent("role", models.ActionUpdated, id))
	return role, nil
}

// DeleteRole removes a custom role. System roles are rejected with
// ErrProtectedRole; unknown ids are a no-op.
func (r *RoleRegistry) DeleteRole(id string) error {
	r.mu.Lock()
	role, ok := r.roles[id]
	if !ok {
		r.mu.Unlock()
		return nil
	}
	if role.IsSystem || id == models.RoleIDSuperAdmin {
		r.mu.Unlock()
		return ErrProtectedRole
	}
	delete(r.roles, id)
	r.mu.Unlock()
	r.events.Publish(newEvent("role", models.ActionDeleted, id))
	return nil
}

func (r *RoleRegistry) RoleByID(id string) (models.Role, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	role, ok := r.roles[id]
	return role, ok
}

func (r *RoleRegistry) Roles() []models.Role {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Role, 0, len(r.roles))
	for _, role := range r.roles {
		out = append(out, role)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt < out[j].CreatedAt
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// HasPermission reports whether the role grants p. Super Admin passes
// unconditionally.
func (r *RoleRegistry) HasPermission(role models.Role, p models.Permission) bool {
	if role.ID == models.RoleIDSuperAdmin {
		return true
	}
	return role.HasPermission(p)
}
