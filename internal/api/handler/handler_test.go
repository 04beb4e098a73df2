package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"tenanta/backend/internal/api/handler"
	"tenanta/backend/internal/models"
	"tenanta/backend/internal/registry"
)

func newTestServer(t *testing.T) (*gin.Engine, *registry.Set) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	registries := registry.New(nil)
	r := gin.New()
	h := handler.NewHandler(registries, nil)
	h.RegisterRoutes(r)
	return r, registries
}

func loginAsAdmin(t *testing.T, s *registry.Set) {
	t.Helper()
	admin, err := s.Users.AddUser(models.User{
		Email:    "admin@tenanta.com",
		FullName: "Test Admin",
		Role:     models.RoleSuperAdmin,
	})
	assert.NoError(t, err)
	assert.NoError(t, s.Users.SetCurrentUser(admin.UserID))
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	r, _ := newTestServer(t)
	w := doJSON(r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMutations_RequireSession(t *testing.T) {
	r, _ := newTestServer(t)

	// Reads are open.
	w := doJSON(r, http.MethodGet, "/api/properties", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Writes are not.
	w = doJSON(r, http.MethodPost, "/api/properties", map[string]interface{}{"name": "Nope"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPropertyLifecycle_OverHTTP(t *testing.T) {
	r, s := newTestServer(t)
	loginAsAdmin(t, s)

	w := doJSON(r, http.MethodPost, "/api/properties", models.Property{
		OwnerID:     "owner_1",
		Name:        "Harbour View",
		Type:        "Apartment",
		Address:     "1 Quay Road",
		TotalRooms:  8,
		VacantRooms: 8,
		MonthlyRent: 42000,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var property models.Property
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &property))
	assert.NotEmpty(t, property.PropertyID)

	w = doJSON(r, http.MethodGet, "/api/properties/"+property.PropertyID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	property.Name = "Harbour View Residences"
	w = doJSON(r, http.MethodPut, "/api/properties/"+property.PropertyID, property)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, "/api/properties/"+property.PropertyID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodGet, "/api/properties/"+property.PropertyID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddProperty_ValidationStatusCodes(t *testing.T) {
	r, s := newTestServer(t)
	loginAsAdmin(t, s)

	// Unknown catalog type.
	w := doJSON(r, http.MethodPost, "/api/properties", models.Property{
		Name: "Camelot", Type: "Castle", TotalRooms: 5,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Vacant above total.
	w = doJSON(r, http.MethodPost, "/api/properties", models.Property{
		Name: "Overbooked", Type: "Apartment", TotalRooms: 5, VacantRooms: 6,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRoomConflict_Returns409(t *testing.T) {
	r, s := newTestServer(t)
	loginAsAdmin(t, s)

	property, _ := s.Properties.AddProperty(models.Property{
		Name: "Numbered", Type: "Apartment", TotalRooms: 5, VacantRooms: 5,
	})

	w := doJSON(r, http.MethodPost, "/api/rooms", models.Room{
		PropertyID: property.PropertyID, Number: "101",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/api/rooms", models.Room{
		PropertyID: property.PropertyID, Number: "101",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(r, http.MethodGet,
		"/api/properties/"+property.PropertyID+"/room-availability?number=101", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var availability map[string]bool
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &availability))
	assert.False(t, availability["available"])
}

func TestSessionEndpoints(t *testing.T) {
	r, s := newTestServer(t)

	w := doJSON(r, http.MethodGet, "/api/session", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	user, _ := s.Users.AddUser(models.User{
		Email: "t@tenanta.com", FullName: "Tom", Role: models.RoleTenant,
	})

	w = doJSON(r, http.MethodPost, "/api/session", map[string]string{"user_id": user.UserID})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/session", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var current models.User
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &current))
	assert.Equal(t, user.UserID, current.UserID)

	w = doJSON(r, http.MethodPost, "/api/session", map[string]string{"user_id": "user_missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodDelete, "/api/session", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(r, http.MethodGet, "/api/session", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteSystemRole_Returns403(t *testing.T) {
	r, s := newTestServer(t)
	loginAsAdmin(t, s)

	w := doJSON(r, http.MethodDelete, "/api/roles/"+models.RoleIDSuperAdmin, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodPut, "/api/roles/"+models.RoleIDSuperAdmin, models.Role{Name: "Hijacked"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestComplaintPermissions_SplitByRole(t *testing.T) {
	r, s := newTestServer(t)

	tenant, _ := s.Users.AddUser(models.User{
		Email: "t@tenanta.com", FullName: "Tom", Role: models.RoleTenant,
	})
	manager, _ := s.Users.AddUser(models.User{
		Email: "m@tenanta.com", FullName: "Mia", Role: models.RolePropertyManager,
	})

	// Tenants may file complaints but not resolve them.
	_ = s.Users.SetCurrentUser(tenant.UserID)
	w := doJSON(r, http.MethodPost, "/api/complaints", models.Complaint{
		Title: "No hot water", SubmittedBy: tenant.UserID, PropertyID: "prop_1",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	var complaint models.Complaint
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &complaint))

	complaint.Status = models.ComplaintResolved
	w = doJSON(r, http.MethodPut, "/api/complaints/"+complaint.ComplaintID, complaint)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Managers may.
	_ = s.Users.SetCurrentUser(manager.UserID)
	w = doJSON(r, http.MethodPut, "/api/complaints/"+complaint.ComplaintID, complaint)
	assert.Equal(t, http.StatusOK, w.Code)
	var resolved models.Complaint
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resolved))
	assert.NotNil(t, resolved.ResolvedAt)
}
