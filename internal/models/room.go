package models

// RoomStatus is the occupancy state of a room.
type RoomStatus string

const (
	RoomVacant      RoomStatus = "VACANT"
	RoomOccupied    RoomStatus = "OCCUPIED"
	RoomMaintenance RoomStatus = "MAINTENANCE"
	RoomReserved    RoomStatus = "RESERVED"
)

// Valid reports whether s is one of the defined room statuses.
func (s RoomStatus) Valid() bool {
	switch s {
	case RoomVacant, RoomOccupied, RoomMaintenance, RoomReserved:
		return true
	}
	return false
}

// Room represents a single rentable unit inside a property.
// The (PropertyID, Number) pair is unique among live rooms.
type Room struct {
	RoomID      string     `json:"room_id"`
	PropertyID  string     `json:"property_id"`
	Number      string     `json:"number"`
	Type        string     `json:"type"`
	Status      RoomStatus `json:"status"`
	MonthlyRent float64    `json:"monthly_rent"`
	Floor       int        `json:"floor"`
	Amenities   []string   `json:"amenities"`
	Description string     `json:"description,omitempty"`
	Images      []string   `json:"images,omitempty"`
}
