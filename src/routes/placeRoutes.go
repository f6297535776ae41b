package routes

import (
	"github.com/astrolog/AstroLog-Backend/src/controllers"
	"github.com/astrolog/AstroLog-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupPlaceRoutes(router *gin.Engine, service *services.PlaceService, observationService *services.ObservationService) {
	placeController := controllers.NewPlaceController(service)
	observationController := controllers.NewObservationController(observationService)

	places := router.Group("/api/places")
	{
		places.GET("", placeController.GetAllPlaces)
		places.POST("", placeController.CreatePlace)
		places.GET("/:id", placeController.GetPlaceByID)
		places.PUT("/:id", placeController.UpdatePlace)
		places.DELETE("/:id", placeController.DeletePlace)
		places.GET("/:id/observations", observationController.GetObservationsByPlace)
	}
}
