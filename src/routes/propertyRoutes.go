package routes

import (
	"github.com/astrolog/AstroLog-Backend/src/controllers"
	"github.com/astrolog/AstroLog-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupPropertyRoutes(router *gin.Engine, service *services.PropertyService) {
	propertyController := controllers.NewPropertyController(service)

	properties := router.Group("/api/properties")
	{
		properties.GET("", propertyController.GetAllProperties)
		properties.POST("", propertyController.CreateProperty)
		properties.GET("/:id", propertyController.GetPropertyByID)
		properties.PUT("/:id", propertyController.UpdateProperty)
		properties.DELETE("/:id", propertyController.DeleteProperty)
	}
}
