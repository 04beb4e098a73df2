package registry

import (
	"sort"
	"sync"
	"time"

	"tenanta/backend/internal/models"
)

// ComplaintRegistry owns complaint records and their nested comments.
// Status is not transition-checked; any status may overwrite any other.
type ComplaintRegistry struct {
	mu         sync.RWMutex
	complaints map[string]models.Complaint
	events     EventPublisher
}

func NewComplaintRegistry(events EventPublisher) *ComplaintRegistry {
	if events == nil {
		events = NopPublisher{}
	}
	return &ComplaintRegistry{
		complaints: make(map[string]models.Complaint),
		events:     events,
	}
}

// AddComplaint stores a new complaint, defaulting the status to OPEN and
// stamping the timestamps.
func (r *ComplaintRegistry) AddComplaint(c models.Complaint) (models.Complaint, error) {
	if c.Status == "" {
		c.Status = models.ComplaintOpen
	}
	if !c.Status.Valid() {
		return models.Complaint{}, ErrInvalidStatus
	}
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	r.mu.Lock()
	if c.ComplaintID == "" {
		c.ComplaintID = models.NewID("comp")
	} else if _, ok := r.complaints[c.ComplaintID]; ok {
		r.mu.Unlock()
		return models.Complaint{}, ErrAlreadyExists
	}
	r.complaints[c.ComplaintID] = c
	r.mu.Unlock()
	r.events.Publish(newEvent("complaint", models.ActionCreated, c.ComplaintID))
	return c, nil
}

// UpdateComplaint replaces the complaint stored under id. CreatedAt is kept
// from the stored record; UpdatedAt is stamped; entering RESOLVED stamps
// ResolvedAt once.
func (r *ComplaintRegistry) UpdateComplaint(id string, c models.Complaint) (models.Complaint, error) {
	if !c.Status.Valid() {
		return models.Complaint{}, ErrInvalidStatus
	}
	r.mu.Lock()
	stored, ok := r.complaints[id]
	if !ok {
		r.mu.Unlock()
		return models.Complaint{}, ErrNotFound
	}
	c.ComplaintID = id
	c.CreatedAt = stored.CreatedAt
	c.UpdatedAt = time.Now()
	if c.Status == models.ComplaintResolved && c.ResolvedAt == nil {
		now := time.Now()
		c.ResolvedAt = &now
	}
	r.complaints[id] = c
	r.mu.Unlock()
	r.events.Publish(newEvent("complaint", models.ActionUpdated, id))
	return c, nil
}

// DeleteComplaint removes a complaint. No-op if the id is unknown.
func (r *ComplaintRegistry) DeleteComplaint(id string) {
	r.mu.Lock()
	_, ok := r.complaints[id]
	delete(r.complaints, id)
	r.mu.Unlock()
	if ok {
		r.events.Publish(newEvent("complaint", models.ActionDeleted, id))
	}
}

func (r *ComplaintRegistry) Complaint(id string) (models.Complaint, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.complaints[id]
	return c, ok
}

func (r *ComplaintRegistry) Complaints() []models.Complaint {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Complaint, 0, len(r.complaints))
	for _, c := range r.complaints {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// ComplaintsForProperty returns all complaints filed against the property.
func (r *ComplaintRegistry) ComplaintsForProperty(propertyID string) []models.Complaint {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Complaint
	for _, c := range r.complaints {
		if c.PropertyID == propertyID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// AddComment appends a comment to the complaint and stamps UpdatedAt.
func (r *ComplaintRegistry) AddComment(complaintID string, comment models.ComplaintComment) (models.Complaint, error) {
	r.mu.Lock()
	c, ok := r.complaints[complaintID]
	if !ok {
		r.mu.Unlock()
		return models.Complaint{}, ErrNotFound
	}
	if comment.CommentID == "" {
		comment.CommentID = models.NewID("comment")
	}
	comment.ComplaintID = complaintID
	if comment.Timestamp.IsZero() {
		comment.Timestamp = time.Now()
	}
	c.Comments = append(c.Comments, comment)
	c.UpdatedAt = time.Now()
	r.complaints[complaintID] = c
	r.mu.Unlock()
	r.events.Publish(newEvent("complaint", models.ActionUpdated, complaintID))
	return c, nil
}
