package routes

import (
	"github.com/astrolog/AstroLog-Backend/src/controllers"
	"github.com/astrolog/AstroLog-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupObservationRoutes(router *gin.Engine, service *services.ObservationService) {
	observationController := controllers.NewObservationController(service)

	observations := router.Group("/api/observations")
	{
		observations.GET("", observationController.GetAllObservations)
		observations.POST("", observationController.CreateObservation)
		// static segments before the :id wildcard
		observations.GET("/search", observationController.SearchObservations)
		observations.POST("/import", observationController.ImportObservations)
		observations.GET("/:id", observationController.GetObservationByID)
		observations.PUT("/:id", observationController.UpdateObservation)
		observations.DELETE("/:id", observationController.DeleteObservation)
	}
}
