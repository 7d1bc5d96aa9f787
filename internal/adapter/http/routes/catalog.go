package routes

import (
	"kd_cleaning/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWorkers   = "/workers"
	PathUnits     = "/units"
	PathUnitTypes = "/unit-types"
	PathClients   = "/clients"
)

func addCatalogRoutes(rg *gin.RouterGroup, workerHandler *handlers.WorkerHandler, unitHandler *handlers.UnitHandler, clientHandler *handlers.ClientHandler) {
	workers := rg.Group(PathWorkers)
	{
		workers.POST("", workerHandler.CreateWorker)
		workers.GET("", workerHandler.ListWorkers)
		workers.GET("/:id", workerHandler.GetWorker)
		workers.PUT("/:id", workerHandler.UpdateWorker)
		workers.DELETE("/:id", workerHandler.DeleteWorker)
	}

	units := rg.Group(PathUnits)
	{
		units.POST("", unitHandler.CreateUnit)
		units.GET("", unitHandler.ListUnits)
		units.GET("/:id", unitHandler.GetUnit)
		units.PUT("/:id", unitHandler.UpdateUnit)
		units.DELETE("/:id", unitHandler.DeleteUnit)
	}

	unitTypes := rg.Group(PathUnitTypes)
	{
		unitTypes.POST("", unitHandler.CreateUnitType)
		unitTypes.GET("", unitHandler.ListUnitTypes)
		unitTypes.PUT("/:id", unitHandler.UpdateUnitType)
		unitTypes.DELETE("/:id", unitHandler.DeleteUnitType)
	}

	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClient)
		clients.PUT("/:id", clientHandler.UpdateClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
	}
}
