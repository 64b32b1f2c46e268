package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/formcraft/formbuilder-api/internal/services"
	"github.com/formcraft/formbuilder-api/internal/utils"
	"github.com/gin-gonic/gin"
)

// RouterConfig carries the HTTP-level settings of the router
type RouterConfig struct {
	AllowedOrigins []string
	MaxBodyBytes   int64

	// ServeStatic serves the built frontend from StaticDir
	ServeStatic bool
	StaticDir   string
}

type HandlerManager struct {
	formHandler     *FormHandler
	responseHandler *ResponseHandler
	uploadHandler   *UploadHandler
	healthHandler   *HealthHandler
	logger          utils.Logger
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	healthChecks map[string]Pinger,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		formHandler:     NewFormHandler(serviceManager.Form(), logger),
		responseHandler: NewResponseHandler(serviceManager.Response(), serviceManager.Export(), logger),
		uploadHandler:   NewUploadHandler(serviceManager.Upload(), logger),
		healthHandler:   NewHealthHandler(healthChecks, logger),
		logger:          logger,
	}
}

// NewRouter builds the engine with middleware and all routes
func (hm *HandlerManager) NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestID(),
		utils.LoggerMiddleware(hm.logger),
		utils.ContextLogger(hm.logger),
		CORS(cfg.AllowedOrigins),
		BodyLimit(cfg.MaxBodyBytes),
	)

	hm.SetupRoutes(router)

	if cfg.ServeStatic {
		hm.setupStatic(router, cfg.StaticDir)
	} else {
		router.NoRoute(routeNotFound)
	}

	return router
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/", hm.healthHandler.Root)
	router.GET("/health", hm.healthHandler.Health)

	api := router.Group("/api")
	{
		forms := api.Group("/forms")
		{
			forms.GET("", hm.formHandler.ListForms)
			forms.POST("", hm.formHandler.CreateForm)
			forms.GET("/:id", hm.formHandler.GetForm)
			forms.PUT("/:id", hm.formHandler.UpdateForm)
			forms.DELETE("/:id", hm.formHandler.DeleteForm)
		}

		responses := api.Group("/responses")
		{
			responses.POST("", hm.responseHandler.SubmitResponse)
			responses.GET("/form/:formId", hm.responseHandler.ListFormResponses)
			responses.GET("/form/:formId/export", hm.responseHandler.ExportFormResponses)
			responses.GET("/:id", hm.responseHandler.GetResponse)
		}

		upload := api.Group("/upload")
		{
			upload.POST("/image", hm.uploadHandler.UploadImage)
			upload.DELETE("/image/*identifier", hm.uploadHandler.DeleteImage)
		}
	}
}

// setupStatic serves built assets and falls back to index.html for client
// side routes. API paths still get a JSON 404.
func (hm *HandlerManager) setupStatic(router *gin.Engine, dir string) {
	router.Static("/assets", filepath.Join(dir, "assets"))

	index := filepath.Join(dir, "index.html")
	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || strings.HasPrefix(c.Request.URL.Path, "/api/") {
			routeNotFound(c)
			return
		}
		c.File(index)
	})
}

func routeNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{Message: "Route not found"})
}
