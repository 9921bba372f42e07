package routes

import (
	"etc_takeoffs/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathTakeoffs            = "/takeoffs"
	PathFabricationRequests = "/fabrication-requests"
)

func addTakeoffRoutes(rg *gin.RouterGroup, takeoffHandler *handlers.TakeoffHandler) {
	takeoffs := rg.Group(PathTakeoffs)
	{
		takeoffs.POST("", takeoffHandler.CreateTakeoff)
		takeoffs.POST("/preview", takeoffHandler.PreviewTakeoff)
		takeoffs.GET("/:id", takeoffHandler.GetTakeoff)
		takeoffs.PUT("/:id", takeoffHandler.UpdateTakeoff)

		// Lifecycle transitions.
		takeoffs.POST("/:id/submit/build-shop", takeoffHandler.SubmitToBuildShop)
		takeoffs.POST("/:id/submit/sign-shop", takeoffHandler.SubmitToSignShop)
		takeoffs.POST("/:id/cancel", takeoffHandler.CancelTakeoff)
		takeoffs.POST("/:id/reopen", takeoffHandler.ReopenTakeoff)
		takeoffs.POST("/:id/revisions", takeoffHandler.CreateRevision)
		takeoffs.POST("/:id/work-order", takeoffHandler.GenerateWorkOrder)
	}

	requests := rg.Group(PathFabricationRequests)
	{
		// Called by the shops once work begins.
		requests.PATCH("/:id/start", takeoffHandler.StartManufacturing)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
