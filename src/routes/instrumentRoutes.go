package routes

import (
	"github.com/astrolog/AstroLog-Backend/src/controllers"
	"github.com/astrolog/AstroLog-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupInstrumentRoutes(router *gin.Engine, service *services.InstrumentService, observationService *services.ObservationService) {
	instrumentController := controllers.NewInstrumentController(service)
	observationController := controllers.NewObservationController(observationService)

	instruments := router.Group("/api/instruments")
	{
		instruments.GET("", instrumentController.GetAllInstruments)
		instruments.POST("", instrumentController.CreateInstrument)
		instruments.GET("/:id", instrumentController.GetInstrumentByID)
		instruments.PUT("/:id", instrumentController.UpdateInstrument)
		instruments.DELETE("/:id", instrumentController.DeleteInstrument)
		instruments.GET("/:id/observations", observationController.GetObservationsByInstrument)
	}
}
