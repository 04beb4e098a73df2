package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tenanta/backend/internal/metrics"
	"tenanta/backend/internal/models"
)

// RegisterRoutes wires every registry operation onto the engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.Use(metrics.Middleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/ws", h.ServeWebSocket)

	api := r.Group("/api")

	manageProps := h.RequirePermission(models.PermManageProperties)
	manageTenants := h.RequirePermission(models.PermManageTenants)
	manageManagers := h.RequirePermission(models.PermManageManagers)

	// Catalogs
	api.GET("/property-types", h.ListPropertyTypes)
	api.POST("/property-types", manageProps, h.AddPropertyType)
	api.PUT("/property-types", manageProps, h.UpdatePropertyType)
	api.DELETE("/property-types/:name", manageProps, h.DeletePropertyType)

	api.GET("/room-types", h.ListRoomTypes)
	api.POST("/room-types", manageProps, h.AddRoomType)
	api.PUT("/room-types", manageProps, h.UpdateRoomType)
	api.DELETE("/room-types/:name", manageProps, h.DeleteRoomType)

	api.GET("/room-categories", h.ListRoomCategories)
	api.POST("/room-categories", manageProps, h.AddRoomCategory)
	api.PUT("/room-categories", manageProps, h.UpdateRoomCategory)
	api.DELETE("/room-categories/:name", manageProps, h.DeleteRoomCategory)

	// Amenities
	api.GET("/amenities", h.ListAmenities)
	api.POST("/amenities", manageProps, h.AddAmenity)
	api.PUT("/amenities/:name", manageProps, h.UpdateAmenity)
	api.DELETE("/amenities/:name", manageProps, h.DeleteAmenity)

	// Properties
	api.GET("/properties", h.ListProperties)
	api.POST("/properties", manageProps, h.AddProperty)
	api.GET("/properties/:id", h.GetProperty)
	api.PUT("/properties/:id", manageProps, h.UpdateProperty)
	api.DELETE("/properties/:id", manageProps, h.DeleteProperty)
	api.GET("/properties/:id/rooms", h.ListPropertyRooms)
	api.GET("/properties/:id/occupancy", h.GetPropertyOccupancy)
	api.GET("/properties/:id/capacity", h.GetPropertyCapacity)
	api.GET("/properties/:id/room-availability", h.GetRoomNumberAvailability)
	api.GET("/properties/:id/tenants", h.ListPropertyTenants)
	api.GET("/properties/:id/complaints", h.ListPropertyComplaints)

	// Rooms
	api.GET("/rooms", h.ListRooms)
	api.POST("/rooms", manageProps, h.AddRoom)
	api.GET("/rooms/:id", h.GetRoom)
	api.PUT("/rooms/:id", manageProps, h.UpdateRoom)
	api.DELETE("/rooms/:id", manageProps, h.DeleteRoom)
	api.GET("/rooms/:id/occupied", h.GetRoomOccupied)

	// Tenants
	api.GET("/tenants", h.ListTenants)
	api.POST("/tenants", manageTenants, h.AddTenant)
	api.GET("/tenants/:id", h.GetTenant)
	api.PUT("/tenants/:id", manageTenants, h.UpdateTenant)
	api.DELETE("/tenants/:id", manageTenants, h.DeleteTenant)
	api.POST("/tenants/:id/assign", manageTenants, h.AssignTenantToRoom)

	// Users and session
	api.GET("/users", h.ListUsers)
	api.POST("/users", manageManagers, h.AddUser)
	api.GET("/users/:id", h.GetUser)
	api.PUT("/users/:id", manageManagers, h.UpdateUser)
	api.DELETE("/users/:id", manageManagers, h.DeleteUser)

	api.GET("/session", h.GetSession)
	api.POST("/session", h.SetSession)
	api.DELETE("/session", h.ClearSession)

	// Roles
	api.GET("/roles", h.ListRoles)
	api.POST("/roles", manageManagers, h.AddRole)
	api.GET("/roles/:id", h.GetRole)
	api.PUT("/roles/:id", manageManagers, h.UpdateRole)
	api.DELETE("/roles/:id", manageManagers, h.DeleteRole)

	// Complaints
	api.GET("/complaints", h.ListComplaints)
	api.POST("/complaints", h.RequirePermission(models.PermSubmitMaintenance), h.AddComplaint)
	api.GET("/complaints/:id", h.GetComplaint)
	api.PUT("/complaints/:id", h.RequirePermission(models.PermHandleMaintenance), h.UpdateComplaint)
	api.DELETE("/complaints/:id", h.RequirePermission(models.PermHandleMaintenance), h.DeleteComplaint)
	api.POST("/complaints/:id/comments", h.RequirePermission(models.PermSubmitMaintenance), h.AddComplaintComment)
}
