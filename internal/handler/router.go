package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "grooming-booking/docs"
	"grooming-booking/internal/handler/api"
	"grooming-booking/internal/handler/middleware"
	"grooming-booking/internal/pkg/config"
)

// ReadyCheck reports whether backing stores answer; nil means healthy.
type ReadyCheck func(ctx context.Context) error

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Appointment *api.AppointmentHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter, ready ReadyCheck) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware, limiter, ready)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter, ready ReadyCheck) {
	engine.GET("/health", healthCheck(ready))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	writeLimit := []gin.HandlerFunc{limiter.Limit()}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register, Mw: writeLimit},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/validate", Handler: h.Auth.Validate},
			})
		}

		appointments := apiGroup.Group("/appointments")
		appointments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(appointments, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Appointment.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Appointment.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Appointment.Create, Mw: writeLimit},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Appointment.Update, Mw: writeLimit},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Appointment.Delete, Mw: writeLimit},
			})
		}
	}
}

// @Summary Health check
// @Description Check that the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthCheck(ready ReadyCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ready != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := ready(ctx); err != nil {
				_ = c.Error(err)
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":  "unavailable",
					"message": "Database is not reachable",
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Service is healthy",
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw[:len(r.Mw):len(r.Mw)], r.Handler)...)
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
