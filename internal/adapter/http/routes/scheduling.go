package routes

import (
	"kd_cleaning/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathServices = "/services"

func addSchedulingRoutes(rg *gin.RouterGroup, serviceHandler *handlers.ServiceHandler, importHandler *handlers.ImportHandler) {
	services := rg.Group(PathServices)
	{
		services.POST("", serviceHandler.CreateService)
		services.GET("", serviceHandler.ListServices)
		services.GET("/:id", serviceHandler.GetService)
		services.PUT("/:id", serviceHandler.UpdateService)
		services.DELETE("/:id", serviceHandler.DeleteService)

		// Document import proposes drafts; nothing is persisted here.
		services.POST("/import", importHandler.ExtractDrafts)
	}
}
