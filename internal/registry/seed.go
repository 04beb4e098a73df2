package registry

import (
	"log"

	"tenanta/backend/internal/models"
)

// Default catalogs loaded into every new PropertyRegistry.
var (
	defaultPropertyTypes = []string{
		"Apartment",
		"House",
		"Villa",
		"Commercial",
		"Office",
		"Warehouse",
		"Other",
	}

	defaultRoomTypes = []string{
		"Single Room",
		"Double Room",
		"Studio",
		"En-suite",
		"Master Room",
		"Other",
	}

	defaultRoomCategories = []string{
		"Wing A",
		"Wing B",
		"Block 1",
		"Block 2",
		"Main Building",
		"Annex",
	}

	defaultAmenities = []models.Amenity{
		{Name: "WiFi", Icon: "wifi", Category: models.AmenityBasicUtilities},
		{Name: "Parking", Icon: "parking", Category: models.AmenityParking},
		{Name: "Security", Icon: "security", Category: models.AmenitySecurity},
		{Name: "Water", Icon: "water", Category: models.AmenityBasicUtilities},
		{Name: "Electricity", Icon: "electricity", Category: models.AmenityBasicUtilities},
		{Name: "Gym", Icon: "gym", Category: models.AmenityRecreation},
		{Name: "Swimming Pool", Icon: "pool", Category: models.AmenityRecreation},
		{Name: "CCTV", Icon: "cctv", Category: models.AmenitySecurity},
		{Name: "Garbage Collection", Icon: "garbage", Category: models.AmenityConvenience},
		{Name: "Elevator", Icon: "elevator", Category: models.AmenityConvenience},
	}
)

// SeedDemoData loads the demo properties and users. Safe to skip in
// production; the system roles and default catalogs are always present.
func SeedDemoData(s *Set) {
	demoProperties := []models.Property{
		{
			PropertyID:  "prop_1",
			OwnerID:     "owner_1",
			Name:        "Sunshine Apartments",
			Type:        "Apartment",
			Address:     "123 Sun Street",
			TotalRooms:  10,
			VacantRooms: 10,
			Amenities:   []string{"WiFi", "Parking", "Security"},
			Location: models.Location{
				Latitude:  -1.2921,
				Longitude: 36.8219,
				Address:   "123 Sun Street",
				City:      "Nairobi",
				Country:   "Kenya",
			},
			MonthlyRent: 25000,
			Description: "Modern apartment complex in the heart of the city",
		},
		{
			PropertyID:  "prop_2",
			OwnerID:     "owner_1",
			Name:        "Green Valley Estate",
			Type:        "House",
			Address:     "456 Valley Road",
			TotalRooms:  15,
			VacantRooms: 15,
			Amenities:   []string{"Swimming Pool", "Gym", "Security"},
			Location: models.Location{
				Latitude:  -1.2974,
				Longitude: 36.8115,
				Address:   "456 Valley Road",
				City:      "Nairobi",
				Country:   "Kenya",
			},
			MonthlyRent: 35000,
			Description: "Luxurious gated community with modern amenities",
		},
		{
			PropertyID:  "prop_3",
			OwnerID:     "owner_2",
			Name:        "Blue Waters Apartments",
			Type:        "Apartment",
			Address:     "789 Lake View",
			TotalRooms:  20,
			VacantRooms: 20,
			Amenities:   []string{"WiFi", "Parking", "CCTV"},
			Location: models.Location{
				Latitude:  -1.3028,
				Longitude: 36.8062,
				Address:   "789 Lake View",
				City:      "Nairobi",
				Country:   "Kenya",
			},
			MonthlyRent: 30000,
			Description: "Waterfront apartments with scenic views",
		},
	}
	for _, p := range demoProperties {
		if _, err := s.Properties.AddProperty(p); err != nil {
			log.Printf("ERROR: Failed to seed property %s: %v", p.Name, err)
		}
	}

	demoUsers := []models.User{
		{
			UserID:      "user_1",
			Email:       "admin@tenanta.com",
			FullName:    "John Admin",
			PhoneNumber: "+254700000001",
			Role:        models.RoleSuperAdmin,
			IsActive:    true,
		},
		{
			UserID:           "user_2",
			Email:            "owner@tenanta.com",
			FullName:         "Sarah Owner",
			PhoneNumber:      "+254700000002",
			Role:             models.RolePropertyOwner,
			IsActive:         true,
			OwnedPropertyIDs: []string{"prop_1", "prop_2"},
		},
		{
			UserID:             "user_3",
			Email:              "manager@tenanta.com",
			FullName:           "Mike Manager",
			PhoneNumber:        "+254700000003",
			Role:               models.RolePropertyManager,
			IsActive:           true,
			ManagedPropertyIDs: []string{"prop_1"},
		},
		{
			UserID:      "user_4",
			Email:       "tenant@tenanta.com",
			FullName:    "Tom Tenant",
			PhoneNumber: "+254700000004",
			Role:        models.RoleTenant,
			IsActive:    true,
			TenantInfo: &models.TenantInfo{
				PropertyID:      "prop_1",
				RoomID:          "room_1",
				LeaseStartDate:  "2024-01-01",
				LeaseEndDate:    "2024-12-31",
				MonthlyRent:     15000,
				SecurityDeposit: 15000,
			},
		},
	}
	for _, u := range demoUsers {
		if _, err := s.Users.AddUser(u); err != nil {
			log.Printf("ERROR: Failed to seed user %s: %v", u.Email, err)
		}
	}

	log.Printf("INFO: Demo data seeded (%d properties, %d users).", len(demoProperties), len(demoUsers))
}
