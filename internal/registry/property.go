package registry

import (
	"sort"
	"sync"

	"tenanta/backend/internal/models"
)

// TenantDetacher clears tenant references when a property or room is
// removed. Wired after construction to break the registry cycle, the same
// way the hub's client restorer is attached.
type TenantDetacher interface {
	DetachProperty(propertyID string)
	DetachRoom(roomID string)
}

// PropertyRegistry owns properties, rooms, amenities and the three string
// catalogs (property types, room types, room categories). All collections
// are keyed by id; updates replace by id, never by value match.
type PropertyRegistry struct {
	mu sync.RWMutex

	properties map[string]models.Property
	rooms      map[string]models.Room
	amenities  map[string]models.Amenity

	propertyTypes  []string
	roomTypes      []string
	roomCategories []string

	events   EventPublisher
	detacher TenantDetacher
}

// NewPropertyRegistry creates a registry pre-seeded with the default
// catalogs and amenity list.
func NewPropertyRegistry(events EventPublisher) *PropertyRegistry {
	if events == nil {
		events = NopPublisher{}
	}
	r := &PropertyRegistry{
		properties:     make(map[string]models.Property),
		rooms:          make(map[string]models.Room),
		amenities:      make(map[string]models.Amenity),
		propertyTypes:  append([]string(nil), defaultPropertyTypes...),
		roomTypes:      append([]string(nil), defaultRoomTypes...),
		roomCategories: append([]string(nil), defaultRoomCategories...),
		events:         events,
	}
	for _, a := range defaultAmenities {
		r.amenities[a.Name] = a
	}
	return r
}

// SetTenantDetacher attaches the tenant side of the cascade. Must be called
// before the registry is shared across goroutines.
func (r *PropertyRegistry) SetTenantDetacher(d TenantDetacher) {
	r.detacher = d
}

// --- String catalogs ---

func catalogContains(catalog []string, name string) bool {
	for _, entry := range catalog {
		if entry == name {
			return true
		}
	}
	return false
}

func catalogAdd(catalog *[]string, name string) bool {
	if catalogContains(*catalog, name) {
		return false
	}
	*catalog = append(*catalog, name)
	return true
}

func catalogUpdate(catalog []string, oldName, newName string) error {
	if oldName != newName && catalogContains(catalog, newName) {
		return ErrDuplicateName
	}
	for i, entry := range catalog {
		if entry == oldName {
			catalog[i] = newName
			return nil
		}
	}
	return ErrNotFound
}

func catalogDelete(catalog *[]string, name string) bool {
	for i, entry := range *catalog {
		if entry == name {
			*catalog = append((*catalog)[:i], (*catalog)[i+1:]...)
			return true
		}
	}
	return false
}

// AddPropertyType adds a type name to the catalog. Idempotent.
func (r *PropertyRegistry) AddPropertyType(name string) {
	r.mu.Lock()
	added := catalogAdd(&r.propertyTypes, name)
	r.mu.Unlock()
	if added {
		r.events.Publish(newEvent("property_type", models.ActionCreated, name))
	}
}

func (r *PropertyRegistry) UpdatePropertyType(oldName, newName string) error {
	r.mu.Lock()
	err := catalogUpdate(r.propertyTypes, oldName, newName)
	r.mu.Unlock()
	if err == nil {
		r.events.Publish(newEvent("property_type", models.ActionUpdated, newName))
	}
	return err
}

// DeletePropertyType removes a type name. No-op if absent.
func (r *PropertyRegistry) DeletePropertyType(name string) {
	r.mu.Lock()
	removed := catalogDelete(&r.propertyTypes, name)
	r.mu.Unlock()
	if removed {
		r.events.Publish(newEvent("property_type", models.ActionDeleted, name))
	}
}

func (r *PropertyRegistry) PropertyTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.propertyTypes...)
}

func (r *PropertyRegistry) AddRoomType(name string) {
	r.mu.Lock()
	added := catalogAdd(&r.roomTypes, name)
	r.mu.Unlock()
	if added {
		r.events.Publish(newEvent("room_type", models.ActionCreated, name))
	}
}

func (r *PropertyRegistry) UpdateRoomType(oldName, newName string) error {
	r.mu.Lock()
	err := catalogUpdate(r.roomTypes, oldName, newName)
	r.mu.Unlock()
	if err == nil {
		r.events.Publish(newEvent("room_type", models.ActionUpdated, newName))
	}
	return err
}

func (r *PropertyRegistry) DeleteRoomType(name string) {
	r.mu.Lock()
	removed := catalogDelete(&r.roomTypes, name)
	r.mu.Unlock()
	if removed {
		r.events.Publish(newEvent("room_type", models.ActionDeleted, name))
	}
}

func (r *PropertyRegistry) RoomTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.roomTypes...)
}

func (r *PropertyRegistry) AddRoomCategory(name string) {
	r.mu.Lock()
	added := catalogAdd(&r.roomCategories, name)
	r.mu.Unlock()
	if added {
		r.events.Publish(newEvent("room_category", models.ActionCreated, name))
	}
}

func (r *PropertyRegistry) UpdateRoomCategory(oldName, newName string) error {
	r.mu.Lock()
	err := catalogUpdate(r.roomCategories, oldName, newName)
	r.mu.Unlock()
	if err == nil {
		r.events.Publish(newEvent("room_category", models.ActionUpdated, newName))
	}
	return err
}

func (r *PropertyRegistry) DeleteRoomCategory(name string) {
	r.mu.Lock()
	removed := catalogDelete(&r.roomCategories, name)
	r.mu.Unlock()
	if removed {
		r.events.Publish(newEvent("room_category", models.ActionDeleted, name))
	}
}

func (r *PropertyRegistry) RoomCategories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.roomCategories...)
}

// --- Amenities (keyed by name) ---

func (r *PropertyRegistry) AddAmenity(a models.Amenity) error {
	r.mu.Lock()
	if _, ok := r.amenities[a.Name]; ok {
		r.mu.Unlock()
		return ErrDuplicateName
	}
	r.amenities[a.Name] = a
	r.mu.Unlock()
	r.events.Publish(newEvent("amenity", models.ActionCreated, a.Name))
	return nil
}

// UpdateAmenity replaces the amenity stored under name. Renames are allowed
// as long as the new name is free.
func (r *PropertyRegistry) UpdateAmenity(name string, a models.Amenity) error {
	r.mu.Lock()
	if _, ok := r.amenities[name]; !ok {
		r.mu.Unlock()
		return ErrNotFound
	}
	if a.Name != name {
		if _, taken := r.amenities[a.Name]; taken {
			r.mu.Unlock()
			return ErrDuplicateName
		}
		delete(r.amenities, name)
	}
	r.amenities[a.Name] = a
	r.mu.Unlock()
	r.events.Publish(newEvent("amenity", models.ActionUpdated, a.Name))
	return nil
}

func (r *PropertyRegistry) DeleteAmenity(name string) {
	r.mu.Lock()
	_, ok := r.amenities[name]
	delete(r.amenities, name)
	r.mu.Unlock()
	if ok {
		r.events.Publish(newEvent("amenity", models.ActionDeleted, name))
	}
}

func (r *PropertyRegistry) Amenity(name string) (models.Amenity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.amenities[name]
	return a, ok
}

func (r *PropertyRegistry) Amenities() []models.Amenity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Amenity, 0, len(r.amenities))
	for _, a := range r.amenities {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// --- Properties ---

func (r *PropertyRegistry) validateProperty(p models.Property) error {
	if !catalogContains(r.propertyTypes, p.Type) {
		return ErrUnknownPropertyType
	}
	if p.VacantRooms > p.TotalRooms {
		return ErrVacantExceedsTotal
	}
	return nil
}

// AddProperty stores a new property. A missing id is generated; a supplied
// id must be unused.
func (r *PropertyRegistry) AddProperty(p models.Property) (models.Property, error) {
	r.mu.Lock()
	if err := r.validateProperty(p); err != nil {
		r.mu.Unlock()
		return models.Property{}, err
	}
	if p.PropertyID == "" {
		p.PropertyID = models.NewID("prop")
	} else if _, ok := r.properties[p.PropertyID]; ok {
		r.mu.Unlock()
		return models.Property{}, ErrAlreadyExists
	}
	r.properties[p.PropertyID] = p
	r.mu.Unlock()
	r.events.Publish(newEvent("property", models.ActionCreated, p.PropertyID))
	return p, nil
}

// UpdateProperty replaces the property stored under id. TotalRooms cannot
// drop below the number of rooms already registered.
func (r *PropertyRegistry) UpdateProperty(id string, p models.Property) (models.Property, error) {
	r.mu.Lock()
	if _, ok := r.properties[id]; !ok {
		r.mu.Unlock()
		return models.Property{}, ErrNotFound
	}
	if err := r.validateProperty(p); err != nil {
		r.mu.Unlock()
		return models.Property{}, err
	}
	if p.TotalRooms < r.roomCountLocked(id) {
		r.mu.Unlock()
		return models.Property{}, ErrCapacityExceeded
	}
	p.PropertyID = id
	r.properties[id] = p
	r.mu.Unlock()
	r.events.Publish(newEvent("property", models.ActionUpdated, id))
	return p, nil
}

// DeleteProperty removes a property together with its rooms and detaches
// any tenants referencing it. No-op if the id is unknown.
func (r *PropertyRegistry) DeleteProperty(id string) {
	r.mu.Lock()
	if _, ok := r.properties[id]; !ok {
		r.mu.Unlock()
		return
	}
	delete(r.properties, id)
	var removedRooms []string
	for roomID, room := range r.rooms {
		if room.PropertyID == id {
			delete(r.rooms, roomID)
			removedRooms = append(removedRooms, roomID)
		}
	}
	r.mu.Unlock()

	// Cascade outside the lock; the detacher takes the tenant lock.
	if r.detacher != nil {
		r.detacher.DetachProperty(id)
	}
	for _, roomID := range removedRooms {
		r.events.Publish(newEvent("room", models.ActionDeleted, roomID))
	}
	r.events.Publish(newEvent("property", models.ActionDeleted, id))
}

func (r *PropertyRegistry) Property(id string) (models.Property, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.properties[id]
	return p, ok
}

func (r *PropertyRegistry) Properties() []models.Property {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Property, 0, len(r.properties))
	for _, p := range r.properties {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PropertyID < out[j].PropertyID })
	return out
}

// --- Rooms ---

func (r *PropertyRegistry) roomCountLocked(propertyID string) int {
	n := 0
	for _, room := range r.rooms {
		if room.PropertyID == propertyID {
			n++
		}
	}
	return n
}

func (r *PropertyRegistry) roomNumberTakenLocked(propertyID, number, excludeRoomID string) bool {
	for _, room := range r.rooms {
		if room.PropertyID == propertyID && room.Number == number && room.RoomID != excludeRoomID {
			return true
		}
	}
	return false
}

// AddRoom stores a new room after checking the owning property exists, has
// spare capacity, and does not already use the room number.
func (r *PropertyRegistry) AddRoom(room models.Room) (models.Room, error) {
	r.mu.Lock()
	property, ok := r.properties[room.PropertyID]
	if !ok {
		r.mu.Unlock()
		return models.Room{}, ErrPropertyNotFound
	}
	if room.Status == "" {
		room.Status = models.RoomVacant
	}
	if !room.Status.Valid() {
		r.mu.Unlock()
		return models.Room{}, ErrInvalidStatus
	}
	if r.roomCountLocked(room.PropertyID) >= property.TotalRooms {
		r.mu.Unlock()
		return models.Room{}, ErrCapacityExceeded
	}
	if r.roomNumberTakenLocked(room.PropertyID, room.Number, "") {
		r.mu.Unlock()
		return models.Room{}, ErrDuplicateRoomNumber
	}
	if room.RoomID == "" {
		room.RoomID = models.NewID("room")
	} else if _, exists := r.rooms[room.RoomID]; exists {
		r.mu.Unlock()
		return models.Room{}, ErrAlreadyExists
	}
	r.rooms[room.RoomID] = room
	r.mu.Unlock()
	r.events.Publish(newEvent("room", models.ActionCreated, room.RoomID))
	return room, nil
}

func (r *PropertyRegistry) UpdateRoom(id string, room models.Room) (models.Room, error) {
	r.mu.Lock()
	stored, ok := r.rooms[id]
	if !ok {
		r.mu.Unlock()
		return models.Room{}, ErrNotFound
	}
	property, ok := r.properties[room.PropertyID]
	if !ok {
		r.mu.Unlock()
		return models.Room{}, ErrPropertyNotFound
	}
	if !room.Status.Valid() {
		r.mu.Unlock()
		return models.Room{}, ErrInvalidStatus
	}
	// Moving the room to another property counts against that property's capacity.
	if room.PropertyID != stored.PropertyID && r.roomCountLocked(room.PropertyID) >= property.TotalRooms {
		r.mu.Unlock()
		return models.Room{}, ErrCapacityExceeded
	}
	if r.roomNumberTakenLocked(room.PropertyID, room.Number, id) {
		r.mu.Unlock()
		return models.Room{}, ErrDuplicateRoomNumber
	}
	room.RoomID = id
	r.rooms[id] = room
	r.mu.Unlock()
	r.events.Publish(newEvent("room", models.ActionUpdated, id))
	return room, nil
}

// DeleteRoom removes a room and detaches any tenant assigned to it. No-op
// if the id is unknown.
func (r *PropertyRegistry) DeleteRoom(id string) {
	r.mu.Lock()
	if _, ok := r.rooms[id]; !ok {
		r.mu.Unlock()
		return
	}
	delete(r.rooms, id)
	r.mu.Unlock()

	if r.detacher != nil {
		r.detacher.DetachRoom(id)
	}
	r.events.Publish(newEvent("room", models.ActionDeleted, id))
}

func (r *PropertyRegistry) Room(id string) (models.Room, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[id]
	return room, ok
}

func (r *PropertyRegistry) Rooms() []models.Room {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		out = append(out, room)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomID < out[j].RoomID })
	return out
}

// RoomsForProperty returns all rooms belonging to the given property.
func (r *PropertyRegistry) RoomsForProperty(propertyID string) []models.Room {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Room
	for _, room := range r.rooms {
		if room.PropertyID == propertyID {
			out = append(out, room)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// PropertyOccupancy returns (occupied room count, declared total rooms).
// Unknown properties report (0, 0).
func (r *PropertyRegistry) PropertyOccupancy(propertyID string) (occupied, total int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	property, ok := r.properties[propertyID]
	if !ok {
		return 0, 0
	}
	for _, room := range r.rooms {
		if room.PropertyID == propertyID && room.Status == models.RoomOccupied {
			occupied++
		}
	}
	return occupied, property.TotalRooms
}

// IsRoomNumberAvailable reports whether no other room in the property uses
// the number. excludeRoomID exempts the room being edited.
func (r *PropertyRegistry) IsRoomNumberAvailable(propertyID, number, excludeRoomID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return !r.roomNumberTakenLocked(propertyID, number, excludeRoomID)
}

// HasAvailableCapacity reports whether the property can take another room.
func (r *PropertyRegistry) HasAvailableCapacity(propertyID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	property, ok := r.properties[propertyID]
	if !ok {
		return false
	}
	return r.roomCountLocked(propertyID) < property.TotalRooms
}
