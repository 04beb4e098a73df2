package models

import "time"

type ComplaintStatus string

const (
	ComplaintOpen       ComplaintStatus = "OPEN"
	ComplaintInProgress ComplaintStatus = "IN_PROGRESS"
	ComplaintResolved   ComplaintStatus = "RESOLVED"
	ComplaintClosed     ComplaintStatus = "CLOSED"
)

func (s ComplaintStatus) Valid() bool {
	switch s {
	case ComplaintOpen, ComplaintInProgress, ComplaintResolved, ComplaintClosed:
		return true
	}
	return false
}

type ComplaintPriority string

const (
	PriorityLow    ComplaintPriority = "LOW"
	PriorityMedium ComplaintPriority = "MEDIUM"
	PriorityHigh   ComplaintPriority = "HIGH"
	PriorityUrgent ComplaintPriority = "URGENT"
)

type ComplaintCategory string

const (
	CategoryMaintenance     ComplaintCategory = "MAINTENANCE"
	CategoryNoise           ComplaintCategory = "NOISE"
	CategorySecurity        ComplaintCategory = "SECURITY"
	CategoryCleanliness     ComplaintCategory = "CLEANLINESS"
	CategoryUtilities       ComplaintCategory = "UTILITIES"
	CategoryNeighborDispute ComplaintCategory = "NEIGHBOR_DISPUTE"
	CategoryOther           ComplaintCategory = "OTHER"
)

// Complaint is an issue raised by a tenant against a property or room.
// Status follows OPEN -> IN_PROGRESS -> RESOLVED -> CLOSED by convention,
// but any status may be written over any other.
type Complaint struct {
	ComplaintID string             `json:"complaint_id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Category    ComplaintCategory  `json:"category"`
	Priority    ComplaintPriority  `json:"priority"`
	Status      ComplaintStatus    `json:"status"`
	SubmittedBy string             `json:"submitted_by"` // tenant id
	PropertyID  string             `json:"property_id"`
	RoomID      string             `json:"room_id,omitempty"`
	AssignedTo  string             `json:"assigned_to,omitempty"` // staff id
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	ResolvedAt  *time.Time         `json:"resolved_at,omitempty"`
	Attachments []string           `json:"attachments,omitempty"`
	Comments    []ComplaintComment `json:"comments,omitempty"`
}

// ComplaintComment is a follow-up note on a complaint.
type ComplaintComment struct {
	CommentID   string    `json:"comment_id"`
	ComplaintID string    `json:"complaint_id"`
	UserID      string    `json:"user_id"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
}
