package handlers

import (
	"net/http"

	"travelapp/internal/domain/models"
	"travelapp/internal/http/middleware"
	"travelapp/internal/services"

	"github.com/gin-gonic/gin"
)

type BookingsHandler struct {
	Bookings *services.BookingService
}

func NewBookingsHandler(bookings *services.BookingService) *BookingsHandler {
	return &BookingsHandler{Bookings: bookings}
}

// GET /api/bookings
func (h *BookingsHandler) List(c *gin.Context) {
	list, err := h.Bookings.ListBookings(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": list})
}

// POST /api/bookings
func (h *BookingsHandler) Create(c *gin.Context) {
	var draft models.BookingDraft
	if !BindJSONOrError(c, &draft) {
		return
	}

	booking, err := h.Bookings.CreateBooking(c.Request.Context(), draft)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// GET /api/bookings/:id
func (h *BookingsHandler) Get(c *gin.Context) {
	booking, err := h.Bookings.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// POST /api/bookings/:id/cancel
func (h *BookingsHandler) Cancel(c *gin.Context) {
	if err := h.Bookings.CancelBooking(c.Request.Context(), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	booking, err := h.Bookings.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// GET /api/bookings/:id/e-ticket
func (h *BookingsHandler) ETicket(c *gin.Context) {
	docs := services.DocsService{
		Bookings:  h.Bookings,
		RequestID: middleware.GetRequestID(c),
	}
	pdf, filename, err := docs.GenerateETicket(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
