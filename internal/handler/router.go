package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lionrewards/internal/domain/user"
	"lionrewards/internal/handler/api"
	"lionrewards/internal/handler/middleware"
	"lionrewards/internal/pkg/config"

	"go.uber.org/fx"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine           *gin.Engine
	Config           config.Config
	Logger           *middleware.Logger
	AuthMiddleware   *middleware.AuthMiddleware
	PointsHandler    *api.PointsHandler
	CartHandler      *api.CartHandler
	HistoryHandler   *api.HistoryHandler
	VideoTaskHandler *api.VideoTaskHandler
	VoucherHandler   *api.VoucherHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	anyRole := p.AuthMiddleware.RequireRole(user.RoleMember, user.RoleAdmin)
	memberOnly := p.AuthMiddleware.RequireRole(user.RoleMember)

	authed := engine.Group("")
	authed.Use(p.AuthMiddleware.RequireAuth())
	{
		addRoutes(authed, []route{
			{Method: http.MethodGet, Path: "/points", Handler: p.PointsHandler.Get, Mw: []gin.HandlerFunc{anyRole}},
			{Method: http.MethodPut, Path: "/points", Handler: p.PointsHandler.Update, Mw: []gin.HandlerFunc{anyRole}},

			{Method: http.MethodGet, Path: "/cart", Handler: p.CartHandler.View, Mw: []gin.HandlerFunc{memberOnly}},
			{Method: http.MethodPost, Path: "/cart", Handler: p.CartHandler.Add, Mw: []gin.HandlerFunc{memberOnly}},
			{Method: http.MethodPost, Path: "/cart/checkout", Handler: p.CartHandler.Checkout, Mw: []gin.HandlerFunc{memberOnly}},
			{Method: http.MethodPut, Path: "/cart/:cart_id", Handler: p.CartHandler.Update, Mw: []gin.HandlerFunc{memberOnly}},
			{Method: http.MethodDelete, Path: "/cart/:cart_id", Handler: p.CartHandler.Remove, Mw: []gin.HandlerFunc{memberOnly}},

			{Method: http.MethodGet, Path: "/history", Handler: p.HistoryHandler.List, Mw: []gin.HandlerFunc{anyRole}},
			{Method: http.MethodPost, Path: "/history", Handler: p.HistoryHandler.Log, Mw: []gin.HandlerFunc{memberOnly}},

			{Method: http.MethodGet, Path: "/video-tasks", Handler: p.VideoTaskHandler.List, Mw: []gin.HandlerFunc{anyRole}},
			{Method: http.MethodGet, Path: "/video-tasks/:task_id", Handler: p.VideoTaskHandler.Get, Mw: []gin.HandlerFunc{anyRole}},
			// Members as well as admins: members are the ones who watch the videos and earn the points.
			{Method: http.MethodPost, Path: "/video-watches", Handler: p.VideoTaskHandler.Complete, Mw: []gin.HandlerFunc{anyRole}},

			{Method: http.MethodGet, Path: "/vouchers", Handler: p.VoucherHandler.List, Mw: []gin.HandlerFunc{anyRole}},
		})
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
