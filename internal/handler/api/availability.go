package api

import (
	"net/http"

	resdto "github.com/hificopy/axolopcrm-sub008/internal/handler/dto/response"
	"github.com/hificopy/axolopcrm-sub008/internal/pkg/errs"
	"github.com/hificopy/axolopcrm-sub008/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
	links        queries.LinkQueries
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries, links queries.LinkQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availability: availability,
		links:        links,
	}
}

// @Summary Get availability
// @Description List open slots for a booking link on one day
// @Tags links
// @Produce json
// @Param slug path string true "Link slug"
// @Param date query string true "Day in YYYY-MM-DD, interpreted in the link's timezone"
// @Param tz query string false "IANA timezone for slot display"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /links/{slug}/availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	slug := c.Param("slug")
	date := c.Query("date")
	tz := c.Query("tz")

	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date query parameter is required",
		})
		return
	}

	slots, err := h.availability.Get(c.Request.Context(), slug, date, tz)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrLinkNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Link not found",
			})
		case errs.Is(err, queries.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, expected YYYY-MM-DD",
			})
		case errs.Is(err, queries.ErrInvalidTimezone):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown timezone",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(slug, date, slots))
}

// @Summary Get booking page
// @Description Public link details for rendering a booking page
// @Tags links
// @Produce json
// @Param slug path string true "Link slug"
// @Success 200 {object} resdto.PublicLinkResponse
// @Failure 404 {object} map[string]string
// @Router /links/{slug} [get]
func (h *AvailabilityHandler) GetPublicLink(c *gin.Context) {
	slug := c.Param("slug")

	view, err := h.links.GetBySlug(c.Request.Context(), slug)
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

	c.JSON(http.StatusOK, resdto.FromPublicLinkView(view))
}
