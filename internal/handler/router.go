package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/hificopy/axolopcrm-sub008/internal/handler/api"
	"github.com/hificopy/axolopcrm-sub008/internal/handler/middleware"
	"github.com/hificopy/axolopcrm-sub008/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
	linkHandler *api.LinkHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, availabilityHandler, bookingHandler, linkHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
	linkHandler *api.LinkHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Public booking-page surface, keyed by slug.
		links := apiGroup.Group("/links")
		{
			addRoutes(links, []route{
				{Method: http.MethodGet, Path: "/:slug", Handler: availabilityHandler.GetPublicLink},
				{Method: http.MethodGet, Path: "/:slug/availability", Handler: availabilityHandler.GetAvailability},
				{Method: http.MethodPost, Path: "/:slug/bookings", Handler: bookingHandler.CreateBooking},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.CancelBooking},
			})
		}

		// Owner management surface, keyed by link ID.
		manage := apiGroup.Group("/me/links")
		manage.Use(authMiddleware.RequireAuth())
		{
			addRoutes(manage, []route{
				{Method: http.MethodPost, Path: "", Handler: linkHandler.CreateLink},
				{Method: http.MethodGet, Path: "", Handler: linkHandler.ListLinks},
				{Method: http.MethodGet, Path: "/:id", Handler: linkHandler.GetLink},
				{Method: http.MethodPatch, Path: "/:id", Handler: linkHandler.UpdateLink},
				{Method: http.MethodDelete, Path: "/:id", Handler: linkHandler.DeactivateLink},
				{Method: http.MethodGet, Path: "/:id/bookings", Handler: linkHandler.ListLinkBookings},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
