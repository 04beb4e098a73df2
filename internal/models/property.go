package models

// Property represents a rentable building managed by the system.
// Rooms reference their Property by PropertyID; the Property itself only
// carries the declared TotalRooms capacity.
type Property struct {
	// PropertyID is the unique identifier of the property.
	PropertyID string `json:"property_id"`
	// OwnerID is the identifier of the owning user.
	OwnerID string `json:"owner_id"`
	// Name is the display name of the property.
	Name string `json:"name"`
	// Type is the property type, validated against the property-type catalog.
	Type string `json:"type"`
	// Address is the street address.
	Address string `json:"address"`
	// TotalRooms is the declared room capacity of the property.
	TotalRooms int `json:"total_rooms"`
	// VacantRooms is the number of rooms currently vacant. Never exceeds TotalRooms.
	VacantRooms int `json:"vacant_rooms"`
	// Amenities lists amenity names available at the property.
	Amenities []string `json:"amenities"`
	// Location holds the geographic details of the property.
	Location Location `json:"location"`
	// MonthlyRent is the base rent for the property.
	MonthlyRent float64 `json:"monthly_rent"`
	// Description is free-form text shown on listings.
	Description string `json:"description"`
	// Images lists image identifiers attached to the property.
	Images []string `json:"images,omitempty"`
}

// Location is the geographic position of a property.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
}
