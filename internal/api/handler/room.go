package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tenanta/backend/internal/models"
)

func (h *Handler) ListRooms(c *gin.Context) {
	if propertyID := c.Query("property_id"); propertyID != "" {
		c.JSON(http.StatusOK, h.Registries.Properties.RoomsForProperty(propertyID))
		return
	}
	c.JSON(http.StatusOK, h.Registries.Properties.Rooms())
}

func (h *Handler) AddRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stored, err := h.Registries.Properties.AddRoom(room)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, stored)
}

func (h *Handler) GetRoom(c *gin.Context) {
	room, ok := h.Registries.Properties.Room(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h *Handler) UpdateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stored, err := h.Registries.Properties.UpdateRoom(c.Param("id"), room)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stored)
}

func (h *Handler) DeleteRoom(c *gin.Context) {
	h.Registries.Properties.DeleteRoom(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// GetRoomOccupied reports whether any tenant is assigned to the room.
func (h *Handler) GetRoomOccupied(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"occupied": h.Registries.Tenants.IsRoomOccupied(c.Param("id")),
	})
}
