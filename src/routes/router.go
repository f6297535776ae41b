package routes

import (
	"github.com/astrolog/AstroLog-Backend/src/middleware"
	"github.com/astrolog/AstroLog-Backend/src/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires the full API router around an open database handle. The web
// dashboard is mounted separately because it needs loaded templates.
func New(database *gorm.DB) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.SetupCORS())

	typeService := services.NewTypeService(database)
	propertyService := services.NewPropertyService(database)
	placeService := services.NewPlaceService(database)
	instrumentService := services.NewInstrumentService(database)
	objectService := services.NewObjectService(database)
	observationService := services.NewObservationService(database)

	SetupTypeRoutes(router, typeService)
	SetupPropertyRoutes(router, propertyService)
	SetupPlaceRoutes(router, placeService, observationService)
	SetupInstrumentRoutes(router, instrumentService, observationService)
	SetupObjectRoutes(router, objectService, observationService)
	SetupObservationRoutes(router, observationService)
	SetupRootRoutes(router, database)

	return router
}
