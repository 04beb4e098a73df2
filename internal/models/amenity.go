package models

// AmenityCategory groups amenities for presentation.
type AmenityCategory string

const (
	AmenityBasicUtilities AmenityCategory = "BASIC_UTILITIES"
	AmenitySecurity       AmenityCategory = "SECURITY"
	AmenityRecreation     AmenityCategory = "RECREATION"
	AmenityConvenience    AmenityCategory = "CONVENIENCE"
	AmenityParking        AmenityCategory = "PARKING"
	AmenityOther          AmenityCategory = "OTHER"
)

// Amenity is a named facility offered by a property or room.
// Name is the identity key.
type Amenity struct {
	Name     string          `json:"name"`
	Icon     string          `json:"icon"`
	Category AmenityCategory `json:"category"`
}
