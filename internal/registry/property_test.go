package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tenanta/backend/internal/models"
	"tenanta/backend/internal/registry"
)

func newSet() *registry.Set {
	return registry.New(nil)
}

func validProperty(name string, totalRooms int) models.Property {
	return models.Property{
		OwnerID:     "owner_1",
		Name:        name,
		Type:        "Apartment",
		Address:     "123 Test Street",
		TotalRooms:  totalRooms,
		VacantRooms: totalRooms,
		MonthlyRent: 25000,
	}
}

func TestAddPropertyType_IsIdempotent(t *testing.T) {
	s := newSet()
	before := len(s.Properties.PropertyTypes())

	s.Properties.AddPropertyType("Hostel")
	s.Properties.AddPropertyType("Hostel")

	types := s.Properties.PropertyTypes()
	assert.Equal(t, before+1, len(types))
	assert.Contains(t, types, "Hostel")
}

func TestPropertyTypeCatalog_UpdateAndDelete(t *testing.T) {
	s := newSet()

	s.Properties.AddPropertyType("Hostel")
	assert.NoError(t, s.Properties.UpdatePropertyType("Hostel", "Student Hostel"))
	assert.Contains(t, s.Properties.PropertyTypes(), "Student Hostel")
	assert.NotContains(t, s.Properties.PropertyTypes(), "Hostel")

	assert.ErrorIs(t, s.Properties.UpdatePropertyType("Missing", "Anything"), registry.ErrNotFound)
	assert.ErrorIs(t, s.Properties.UpdatePropertyType("Student Hostel", "Apartment"), registry.ErrDuplicateName)

	// Delete twice: second call is a no-op.
	s.Properties.DeletePropertyType("Student Hostel")
	before := len(s.Properties.PropertyTypes())
	s.Properties.DeletePropertyType("Student Hostel")
	assert.Equal(t, before, len(s.Properties.PropertyTypes()))
}

func TestAddProperty_Validation(t *testing.T) {
	s := newSet()

	p := validProperty("Bad Type Villa", 5)
	p.Type = "Castle"
	_, err := s.Properties.AddProperty(p)
	assert.ErrorIs(t, err, registry.ErrUnknownPropertyType)

	p = validProperty("Over Vacant", 5)
	p.VacantRooms = 6
	_, err = s.Properties.AddProperty(p)
	assert.ErrorIs(t, err, registry.ErrVacantExceedsTotal)
}

func TestUpdateProperty_RoundTrip(t *testing.T) {
	s := newSet()
	stored, err := s.Properties.AddProperty(validProperty("Sunrise", 10))
	assert.NoError(t, err)
	assert.NotEmpty(t, stored.PropertyID)

	updated := stored
	updated.Name = "Sunset"
	updated.MonthlyRent = 30000
	got, err := s.Properties.UpdateProperty(stored.PropertyID, updated)
	assert.NoError(t, err)

	reread, ok := s.Properties.Property(stored.PropertyID)
	assert.True(t, ok)
	assert.Equal(t, got, reread)
	assert.Equal(t, "Sunset", reread.Name)

	_, err = s.Properties.UpdateProperty("prop_missing", updated)
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestDeleteProperty_IdempotentAndCascades(t *testing.T) {
	s := newSet()
	property, _ := s.Properties.AddProperty(validProperty("Cascade Court", 5))
	room, err := s.Properties.AddRoom(models.Room{
		PropertyID: property.PropertyID,
		Number:     "A1",
		Type:       "Single Room",
	})
	assert.NoError(t, err)

	tenant, _ := s.Tenants.AddTenant(models.Tenant{Name: "Jane Roe"})
	_, err = s.Tenants.AssignTenantToRoom(tenant.TenantID, room.RoomID)
	assert.NoError(t, err)

	before := len(s.Properties.Properties())
	s.Properties.DeleteProperty(property.PropertyID)

	_, ok := s.Properties.Property(property.PropertyID)
	assert.False(t, ok)
	assert.Equal(t, before-1, len(s.Properties.Properties()))

	// Rooms cascade, tenants detach.
	_, ok = s.Properties.Room(room.RoomID)
	assert.False(t, ok)
	reread, _ := s.Tenants.Tenant(tenant.TenantID)
	assert.Empty(t, reread.RoomID)
	assert.Empty(t, reread.PropertyID)

	// Repeated delete is a no-op.
	s.Properties.DeleteProperty(property.PropertyID)
	assert.Equal(t, before-1, len(s.Properties.Properties()))
}

func TestAddRoom_RejectsDuplicateNumber(t *testing.T) {
	s := newSet()
	property, _ := s.Properties.AddProperty(validProperty("Twin Towers", 10))

	_, err := s.Properties.AddRoom(models.Room{PropertyID: property.PropertyID, Number: "101"})
	assert.NoError(t, err)
	_, err = s.Properties.AddRoom(models.Room{PropertyID: property.PropertyID, Number: "101"})
	assert.ErrorIs(t, err, registry.ErrDuplicateRoomNumber)

	_, err = s.Properties.AddRoom(models.Room{PropertyID: "prop_missing", Number: "101"})
	assert.ErrorIs(t, err, registry.ErrPropertyNotFound)
}

func TestIsRoomNumberAvailable(t *testing.T) {
	s := newSet()
	property, _ := s.Properties.AddProperty(validProperty("Numbered", 10))
	room, _ := s.Properties.AddRoom(models.Room{PropertyID: property.PropertyID, Number: "101"})

	assert.False(t, s.Properties.IsRoomNumberAvailable(property.PropertyID, "101", ""))
	// The room being edited is exempt from its own number.
	assert.True(t, s.Properties.IsRoomNumberAvailable(property.PropertyID, "101", room.RoomID))
	assert.True(t, s.Properties.IsRoomNumberAvailable(property.PropertyID, "102", ""))
}

func TestAddRoom_CapacityLimit(t *testing.T) {
	s := newSet()
	property, _ := s.Properties.AddProperty(validProperty("Tiny", 1))

	_, err := s.Properties.AddRoom(models.Room{PropertyID: property.PropertyID, Number: "1"})
	assert.NoError(t, err)
	assert.False(t, s.Properties.HasAvailableCapacity(property.PropertyID))

	_, err = s.Properties.AddRoom(models.Room{PropertyID: property.PropertyID, Number: "2"})
	assert.ErrorIs(t, err, registry.ErrCapacityExceeded)

	// Shrinking the declared capacity below the live room count is rejected.
	smaller := property
	smaller.TotalRooms = 0
	smaller.VacantRooms = 0
	_, err = s.Properties.UpdateProperty(property.PropertyID, smaller)
	assert.ErrorIs(t, err, registry.ErrCapacityExceeded)
}

func TestPropertyOccupancy_Scenario(t *testing.T) {
	s := newSet()
	p1, _ := s.Properties.AddProperty(validProperty("First", 10))
	p2, _ := s.Properties.AddProperty(validProperty("Second", 15))
	p3, _ := s.Properties.AddProperty(validProperty("Third", 20))

	_, err := s.Properties.AddRoom(models.Room{
		PropertyID: p1.PropertyID,
		Number:     "101",
		Status:     models.RoomOccupied,
	})
	assert.NoError(t, err)

	occupied, total := s.Properties.PropertyOccupancy(p1.PropertyID)
	assert.Equal(t, 1, occupied)
	assert.Equal(t, 10, total)

	occupied, total = s.Properties.PropertyOccupancy(p2.PropertyID)
	assert.Equal(t, 0, occupied)
	assert.Equal(t, 15, total)

	occupied, total = s.Properties.PropertyOccupancy(p3.PropertyID)
	assert.Equal(t, 0, occupied)
	assert.Equal(t, 20, total)

	occupied, total = s.Properties.PropertyOccupancy("prop_missing")
	assert.Equal(t, 0, occupied)
	assert.Equal(t, 0, total)
}

func TestAmenity_CRUD(t *testing.T) {
	s := newSet()

	err := s.Properties.AddAmenity(models.Amenity{Name: "Sauna", Icon: "sauna", Category: models.AmenityRecreation})
	assert.NoError(t, err)
	assert.ErrorIs(t, s.Properties.AddAmenity(models.Amenity{Name: "Sauna"}), registry.ErrDuplicateName)

	// Rename onto a free name.
	err = s.Properties.UpdateAmenity("Sauna", models.Amenity{Name: "Steam Room", Icon: "steam", Category: models.AmenityRecreation})
	assert.NoError(t, err)
	_, ok := s.Properties.Amenity("Sauna")
	assert.False(t, ok)
	steam, ok := s.Properties.Amenity("Steam Room")
	assert.True(t, ok)
	assert.Equal(t, "steam", steam.Icon)

	// Rename onto a taken name.
	err = s.Properties.UpdateAmenity("Steam Room", models.Amenity{Name: "WiFi"})
	assert.ErrorIs(t, err, registry.ErrDuplicateName)

	s.Properties.DeleteAmenity("Steam Room")
	s.Properties.DeleteAmenity("Steam Room") // no-op
	_, ok = s.Properties.Amenity("Steam Room")
	assert.False(t, ok)
}

func TestDefaultSeeds(t *testing.T) {
	s := newSet()
	assert.Contains(t, s.Properties.PropertyTypes(), "Apartment")
	assert.Contains(t, s.Properties.RoomTypes(), "Single Room")
	assert.Contains(t, s.Properties.RoomCategories(), "Wing A")
	assert.Len(t, s.Properties.Amenities(), 10)
}
