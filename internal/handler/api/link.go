package api

import (
	"net/http"

	reqdto "github.com/hificopy/axolopcrm-sub008/internal/handler/dto/request"
	resdto "github.com/hificopy/axolopcrm-sub008/internal/handler/dto/response"
	"github.com/hificopy/axolopcrm-sub008/internal/handler/middleware"
	"github.com/hificopy/axolopcrm-sub008/internal/pkg/errs"
	"github.com/hificopy/axolopcrm-sub008/internal/usecase/commands"
	"github.com/hificopy/axolopcrm-sub008/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LinkHandler struct {
	linkCommands   commands.LinkCommands
	linkQueries    queries.LinkQueries
	bookingQueries queries.BookingQueries
}

func NewLinkHandler(linkCommands commands.LinkCommands, linkQueries queries.LinkQueries, bookingQueries queries.BookingQueries) *LinkHandler {
	return &LinkHandler{
		linkCommands:   linkCommands,
		linkQueries:    linkQueries,
		bookingQueries: bookingQueries,
	}
}

// @Summary Create link
// @Description Create a booking link owned by the caller
// @Tags links
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateLinkRequest true "Link definition"
// @Success 201 {object} resdto.LinkResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /links [post]
func (h *LinkHandler) CreateLink(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateLinkRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.linkCommands.CreateLink(c.Request.Context(), ownerID, req.ToParams())
	if err != nil {
		h.writeLinkError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromLinkView(view))
}

// @Summary Update link
// @Description Partially update a link owned by the caller
// @Tags links
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Link ID"
// @Param request body reqdto.UpdateLinkRequest true "Fields to change"
// @Success 200 {object} resdto.LinkResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /links/{id} [patch]
func (h *LinkHandler) UpdateLink(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	linkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid link ID format",
		})
		return
	}

	var req reqdto.UpdateLinkRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.linkCommands.UpdateLink(c.Request.Context(), ownerID, linkID, req.ToParams())
	if err != nil {
		h.writeLinkError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLinkView(view))
}

// @Summary Deactivate link
// @Description Deactivate a link; its booking page stops resolving
// @Tags links
// @Produce json
// @Security BearerAuth
// @Param id path string true "Link ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /links/{id} [delete]
func (h *LinkHandler) DeactivateLink(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	linkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid link ID format",
		})
		return
	}

	if err := h.linkCommands.DeactivateLink(c.Request.Context(), ownerID, linkID); err != nil {
		h.writeLinkError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List links
// @Description List links owned by the caller
// @Tags links
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.LinkResponse
// @Failure 401 {object} map[string]string
// @Router /links [get]
func (h *LinkHandler) ListLinks(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.linkQueries.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.LinkResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromLinkView(v)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get link
// @Description Get a link owned by the caller
// @Tags links
// @Produce json
// @Security BearerAuth
// @Param id path string true "Link ID"
// @Success 200 {object} resdto.LinkResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /links/{id} [get]
func (h *LinkHandler) GetLink(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	linkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid link ID format",
		})
		return
	}

	view, err := h.linkQueries.GetByID(c.Request.Context(), ownerID, linkID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrLinkNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Link not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLinkView(view))
}

// @Summary List link bookings
// @Description List bookings taken through a link owned by the caller
// @Tags links
// @Produce json
// @Security BearerAuth
// @Param id path string true "Link ID"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /links/{id}/bookings [get]
func (h *LinkHandler) ListLinkBookings(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	linkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid link ID format",
		})
		return
	}

	views, err := h.bookingQueries.ListByLink(c.Request.Context(), ownerID, linkID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrLinkNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Link not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response := make([]*resdto.BookingResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromBookingView(v)
	}

	c.JSON(http.StatusOK, response)
}

func (h *LinkHandler) writeLinkError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrLinkNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Link not found",
		})
	case errs.Is(err, commands.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Link does not belong to the caller",
		})
	case errs.Is(err, commands.ErrLinkValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Link validation failed",
		})
	case errs.Is(err, commands.ErrSlugExhausted):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Could not allocate a unique slug",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
