package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Domenick1991/travelpackages/internal/domain"
	"github.com/Domenick1991/travelpackages/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	PackageID    int64  `json:"packageId"`
	CustomerName string `json:"customerName"`
	BookingDate  string `json:"bookingDate"`
	Seats        int    `json:"seats"`
}

func (r createBookingRequest) input() booking.CreateBookingInput {
	return booking.CreateBookingInput{
		PackageID:    r.PackageID,
		CustomerName: r.CustomerName,
		BookingDate:  r.BookingDate,
		Seats:        r.Seats,
	}
}

// checkoutRequest keeps packageId raw so that a non-integer id still gets the
// plain-text invalid reference reply.
type checkoutRequest struct {
	PackageID    json.RawMessage `json:"packageId"`
	CustomerName string          `json:"customerName"`
	BookingDate  string          `json:"bookingDate"`
	Seats        int             `json:"seats"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.POST("/checkout", h.checkout)
	router.GET("/:packageId", h.listByPackage)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := bindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), req.input())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *BookingHandler) checkout(c *gin.Context) {
	var req checkoutRequest
	if err := bindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, ref, ok := packageRef(req.PackageID)
	if !ok {
		c.String(http.StatusBadRequest, "Invalid packageId: %s", ref)
		return
	}

	result, err := h.service.Checkout(c.Request.Context(), booking.CreateBookingInput{
		PackageID:    id,
		CustomerName: req.CustomerName,
		BookingDate:  req.BookingDate,
		Seats:        req.Seats,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidReference) {
			c.String(http.StatusBadRequest, "Invalid packageId: %s", ref)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, result)
}

// listByPackage never fails on a bad id: an unparsable id matches nothing.
func (h *BookingHandler) listByPackage(c *gin.Context) {
	id, ok := parseLeadingInt(c.Param("packageId"))
	if !ok {
		c.JSON(http.StatusOK, []domain.Booking{})
		return
	}

	list, err := h.service.ListByPackage(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}
