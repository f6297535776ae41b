package routes

import (
	"github.com/astrolog/AstroLog-Backend/src/controllers"
	"github.com/astrolog/AstroLog-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupTypeRoutes(router *gin.Engine, service *services.TypeService) {
	typeController := controllers.NewTypeController(service)

	types := router.Group("/api/types")
	{
		types.GET("", typeController.GetAllTypes)
		types.POST("", typeController.CreateType)
		types.GET("/:id", typeController.GetTypeByID)
		types.PUT("/:id", typeController.UpdateType)
		types.DELETE("/:id", typeController.DeleteType)
	}
}
