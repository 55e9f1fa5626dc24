package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Domenick1991/travelpackages/internal/domain"
	"github.com/Domenick1991/travelpackages/internal/service/packages"
	"github.com/gin-gonic/gin"
)

type PackageHandler struct {
	service packages.PackageUseCase
}

type updateSeatsRequest struct {
	PackageID   json.RawMessage `json:"packageId"`
	SeatsBooked json.RawMessage `json:"seatsBooked"`
}

func NewPackageHandler(service packages.PackageUseCase) *PackageHandler {
	return &PackageHandler{service: service}
}

func (h *PackageHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:destination", h.getByDestination)
	router.POST("/update-seats", h.updateSeats)
}

func (h *PackageHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *PackageHandler) getByDestination(c *gin.Context) {
	destination := c.Param("destination")
	pkg, err := h.service.GetByDestination(c.Request.Context(), destination)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.String(http.StatusNotFound, "No travel package found for destination: %s", destination)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pkg)
}

func (h *PackageHandler) updateSeats(c *gin.Context) {
	var req updateSeatsRequest
	if err := bindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, ref, ok := packageRef(req.PackageID)
	if !ok {
		c.String(http.StatusBadRequest, "Invalid packageId: %s", ref)
		return
	}
	seats, err := seatCount("seatsBooked", req.SeatsBooked)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pkg, err := h.service.UpdateSeats(c.Request.Context(), packages.UpdateSeatsInput{
		PackageID:   id,
		SeatsBooked: seats,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidReference) {
			c.String(http.StatusBadRequest, "Invalid packageId: %s", ref)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pkg)
}
