package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tenanta/backend/internal/models"
)

func (h *Handler) ListProperties(c *gin.Context) {
	c.JSON(http.StatusOK, h.Registries.Properties.Properties())
}

func (h *Handler) AddProperty(c *gin.Context) {
	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stored, err := h.Registries.Properties.AddProperty(property)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, stored)
}

func (h *Handler) GetProperty(c *gin.Context) {
	property, ok := h.Registries.Properties.Property(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
		return
	}
	c.JSON(http.StatusOK, property)
}

func (h *Handler) UpdateProperty(c *gin.Context) {
	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stored, err := h.Registries.Properties.UpdateProperty(c.Param("id"), property)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stored)
}

func (h *Handler) DeleteProperty(c *gin.Context) {
	h.Registries.Properties.DeleteProperty(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListPropertyRooms(c *gin.Context) {
	c.JSON(http.StatusOK, h.Registries.Properties.RoomsForProperty(c.Param("id")))
}

func (h *Handler) GetPropertyOccupancy(c *gin.Context) {
	occupied, total := h.Registries.Properties.PropertyOccupancy(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"occupied": occupied, "total_rooms": total})
}

func (h *Handler) GetPropertyCapacity(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"has_capacity": h.Registries.Properties.HasAvailableCapacity(c.Param("id")),
	})
}

// GetRoomNumberAvailability answers the pre-save check used by room forms:
// is this number free within the property, ignoring the room being edited?
func (h *Handler) GetRoomNumberAvailability(c *gin.Context) {
	number := c.Query("number")
	if number == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "number query parameter is required"})
		return
	}
	available := h.Registries.Properties.IsRoomNumberAvailable(
		c.Param("id"), number, c.Query("exclude_room_id"))
	c.JSON(http.StatusOK, gin.H{"available": available})
}

func (h *Handler) ListPropertyTenants(c *gin.Context) {
	c.JSON(http.StatusOK, h.Registries.Tenants.TenantsForProperty(c.Param("id")))
}

func (h *Handler) ListPropertyComplaints(c *gin.Context) {
	c.JSON(http.StatusOK, h.Registries.Complaints.ComplaintsForProperty(c.Param("id")))
}
