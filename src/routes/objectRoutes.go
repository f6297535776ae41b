package routes

import (
	"github.com/astrolog/AstroLog-Backend/src/controllers"
	"github.com/astrolog/AstroLog-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupObjectRoutes(router *gin.Engine, service *services.ObjectService, observationService *services.ObservationService) {
	objectController := controllers.NewObjectController(service)
	observationController := controllers.NewObservationController(observationService)

	objects := router.Group("/api/objects")
	{
		objects.GET("", objectController.GetAllObjects)
		objects.POST("", objectController.CreateObject)
		objects.GET("/:id", objectController.GetObjectByID)
		objects.PUT("/:id", objectController.UpdateObject)
		objects.DELETE("/:id", objectController.DeleteObject)
		objects.GET("/:id/observations", observationController.GetObservationsByObject)
	}
}
