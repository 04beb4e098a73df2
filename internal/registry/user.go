package registry

import (
	"sort"
	"sync"
	"time"

	"tenanta/backend/internal/models"
)

// Fixed role-to-permission tables for the session permission check. The
// Super Admin role bypasses the table entirely.
var rolePermissions = map[models.UserRole][]models.Permission{
	models.RolePropertyOwner: {
		models.PermManageProperties,
		models.PermViewReports,
		models.PermManageManagers,
		models.PermViewTenants,
	},
	models.RolePropertyManager: {
		models.PermManageTenants,
		models.PermHandleMaintenance,
		models.PermManagePayments,
		models.PermViewReports,
	},
	models.RoleTenant: {
		models.PermViewLease,
		models.PermSubmitMaintenance,
		models.PermViewPayments,
	},
}

// UserRegistry owns user accounts and the current-user session pointer.
// The session is a plain assignment; there is no authentication.
type UserRegistry struct {
	mu            sync.RWMutex
	users         map[string]models.User
	currentUserID string
	events        EventPublisher
}

func NewUserRegistry(events EventPublisher) *UserRegistry {
	if events == nil {
		events = NopPublisher{}
	}
	return &UserRegistry{
		users:  make(map[string]models.User),
		events: events,
	}
}

func (r *UserRegistry) AddUser(u models.User) (models.User, error) {
	if !u.Role.Valid() {
		return models.User{}, ErrInvalidRole
	}
	r.mu.Lock()
	if u.UserID == "" {
		u.UserID = models.NewID("user")
	} else if _, ok := r.users[u.UserID]; ok {
		r.mu.Unlock()
		return models.User{}, ErrAlreadyExists
	}
	if u.CreatedAt == 0 {
		u.CreatedAt = time.Now().UnixMilli()
	}
	r.users[u.UserID] = u
	r.mu.Unlock()
	r.events.Publish(newEvent("user", models.ActionCreated, u.UserID))
	return u, nil
}

func (r *UserRegistry) UpdateUser(id string, u models.User) (models.User, error) {
	if !u.Role.Valid() {
		return models.User{}, ErrInvalidRole
	}
	r.mu.Lock()
	stored, ok := r.users[id]
	if !ok {
		r.mu.Unlock()
		return models.User{}, ErrNotFound
	}
	u.UserID = id
	u.CreatedAt = stored.CreatedAt
	r.users[id] = u
	r.mu.Unlock()
	r.events.Publish(newEvent("user", models.ActionUpdated, id))
	return u, nil
}

// DeleteUser removes a user. Deleting the current user also clears the
// session. No-op if the id is unknown.
func (r *UserRegistry) DeleteUser(id string) {
	r.mu.Lock()
	_, ok := r.users[id]
	delete(r.users, id)
	if r.currentUserID == id {
		r.currentUserID = ""
	}
	r.mu.Unlock()
	if ok {
		r.events.Publish(newEvent("user", models.ActionDeleted, id))
	}
}

func (r *UserRegistry) UserByID(id string) (models.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	return u, ok
}

func (r *UserRegistry) Users() []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out
}

func (r *UserRegistry) UsersByRole(role models.UserRole) []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out
}

// SetCurrentUser points the session at an existing user.
func (r *UserRegistry) SetCurrentUser(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return ErrNotFound
	}
	r.currentUserID = id
	return nil
}

// ClearCurrentUser drops the session pointer.
func (r *UserRegistry) ClearCurrentUser() {
	r.mu.Lock()
	r.currentUserID = ""
	r.mu.Unlock()
}

// CurrentUser returns the logged-in user, re-read from the collection so
// later updates are visible.
func (r *UserRegistry) CurrentUser() (models.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.currentUserID == "" {
		return models.User{}, false
	}
	u, ok := r.users[r.currentUserID]
	return u, ok
}

// HasPermission checks the current user's role against the fixed permission
// tables. Super Admin always passes; no session never does.
func (r *UserRegistry) HasPermission(p models.Permission) bool {
	u, ok := r.CurrentUser()
	if !ok {
		return false
	}
	if u.Role == models.RoleSuperAdmin {
		return true
	}
	for _, perm := range rolePermissions[u.Role] {
		if perm == p {
			return true
		}
	}
	return false
}
