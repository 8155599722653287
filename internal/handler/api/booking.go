package api

import (
	"net/http"

	reqdto "github.com/hificopy/axolopcrm-sub008/internal/handler/dto/request"
	resdto "github.com/hificopy/axolopcrm-sub008/internal/handler/dto/response"
	"github.com/hificopy/axolopcrm-sub008/internal/pkg/errs"
	"github.com/hificopy/axolopcrm-sub008/internal/usecase/commands"
	"github.com/hificopy/axolopcrm-sub008/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book a slot on a booking link
// @Tags bookings
// @Accept json
// @Produce json
// @Param slug path string true "Link slug"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /links/{slug}/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.CreateBookingParams{
		Slug:        c.Param("slug"),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		ScheduledAt: req.ScheduledAt,
		Timezone:    req.Timezone,
	}

	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), params)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrLinkNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Link not found",
			})
		case errs.Is(err, commands.ErrOutOfWindow):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Requested time is outside the bookable window",
			})
		case errs.Is(err, commands.ErrOutsideHours):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Requested time is outside open hours",
			})
		case errs.Is(err, commands.ErrSlotTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot is no longer available",
			})
		case errs.Is(err, commands.ErrLimitReached):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking limit reached for this period",
			})
		case errs.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{
		Booking: *resdto.FromBookingView(result.Booking),
		Event:   resdto.FromEventView(result.Event),
	})
}

// @Summary Cancel booking
// @Description Cancel a booking; cancelling twice is a no-op
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest false "Cancellation reason"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.CancelBookingRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	view, err := h.bookingCommands.CancelBooking(c.Request.Context(), id, req.GetReason())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
