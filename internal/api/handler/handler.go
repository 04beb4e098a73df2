package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tenanta/backend/internal/eventhub"
	"tenanta/backend/internal/registry"
)

// Handler holds the registry set and the event hub consumed by every route.
type Handler struct {
	Registries *registry.Set
	Hub        *eventhub.Manager
}

func NewHandler(registries *registry.Set, hub *eventhub.Manager) *Handler {
	return &Handler{Registries: registries, Hub: hub}
}

// abortWithError maps registry sentinel errors onto HTTP statuses.
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, registry.ErrNotFound),
		errors.Is(err, registry.ErrPropertyNotFound),
		errors.Is(err, registry.ErrRoomNotFound):
		status = http.StatusNotFound
	case errors.Is(err, registry.ErrAlreadyExists),
		errors.Is(err, registry.ErrDuplicateName),
		errors.Is(err, registry.ErrDuplicateRoomNumber),
		errors.Is(err, registry.ErrRoomOccupied):
		status = http.StatusConflict
	case errors.Is(err, registry.ErrUnknownPropertyType),
		errors.Is(err, registry.ErrVacantExceedsTotal),
		errors.Is(err, registry.ErrCapacityExceeded),
		errors.Is(err, registry.ErrInvalidStatus),
		errors.Is(err, registry.ErrInvalidRole):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, registry.ErrProtectedRole):
		status = http.StatusForbidden
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
