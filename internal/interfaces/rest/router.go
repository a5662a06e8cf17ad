package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nexuscrm/formbridge/internal/interfaces/middleware"
	"github.com/nexuscrm/formbridge/internal/interfaces/web"
)

// NewRouter wires the dashboard routes onto a fresh gin engine
func NewRouter(handler *FormHandler, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Recovery(log),
		middleware.Cors(),
	)

	router.GET("/", web.Index)
	router.GET("/health", handler.Health)

	api := router.Group("/api")
	{
		api.GET("/test", handler.Test)
		api.GET("/fieldtypes", handler.GetFieldTypes)
		api.GET("/tables", handler.ListTables)
		api.GET("/tables/:table_id/schema", handler.GetSchema)
		api.GET("/form/:table_id", handler.GetForm)
		api.POST("/submit/:table_id", handler.Submit)
	}

	router.NoRoute(NotFound)
	return router
}
