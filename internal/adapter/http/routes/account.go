package routes

import (
	"kd_cleaning/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathConfig    = "/config"
	PathDashboard = "/dashboard"
)

func addAccountRoutes(rg *gin.RouterGroup, configHandler *handlers.UserConfigHandler, dashboardHandler *handlers.DashboardHandler) {
	config := rg.Group(PathConfig)
	{
		config.GET("", configHandler.GetConfig)
		config.PUT("", configHandler.SaveConfig)
	}

	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/summary", dashboardHandler.GetSummary)
	}
}
