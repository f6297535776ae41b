package routes

import (
	"net/http"

	"github.com/astrolog/AstroLog-Backend/src/db"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRootRoutes registers the API self-description at / and the storage
// connectivity probe at /health.
func SetupRootRoutes(router *gin.Engine, database *gorm.DB) {
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, apiDescription)
	})

	router.GET("/health", func(ctx *gin.Context) {
		if err := db.Ping(database); err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "database": "disconnected"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ok", "database": "connected"})
	})
}

var apiDescription = gin.H{
	"api":           "Astronomy Observations API",
	"version":       "1.0.0",
	"description":   "RESTful API for managing astronomical observations",
	"web_interface": "/web",
	"endpoints": gin.H{
		"types": gin.H{
			"GET /api/types":        "Get all types",
			"POST /api/types":       "Create a new type",
			"GET /api/types/:id":    "Get a specific type",
			"PUT /api/types/:id":    "Update a specific type",
			"DELETE /api/types/:id": "Delete a specific type",
		},
		"properties": gin.H{
			"GET /api/properties":        "Get all properties",
			"POST /api/properties":       "Create a new property",
			"GET /api/properties/:id":    "Get a specific property",
			"PUT /api/properties/:id":    "Update a specific property",
			"DELETE /api/properties/:id": "Delete a specific property",
		},
		"places": gin.H{
			"GET /api/places":                 "Get all places",
			"POST /api/places":                "Create a new place",
			"GET /api/places/:id":             "Get a specific place",
			"PUT /api/places/:id":             "Update a specific place",
			"DELETE /api/places/:id":          "Delete a specific place",
			"GET /api/places/:id/observations": "Get all observations made at a specific place",
		},
		"instruments": gin.H{
			"GET /api/instruments":                 "Get all instruments",
			"POST /api/instruments":                "Create a new instrument",
			"GET /api/instruments/:id":             "Get a specific instrument",
			"PUT /api/instruments/:id":             "Update a specific instrument",
			"DELETE /api/instruments/:id":          "Delete a specific instrument",
			"GET /api/instruments/:id/observations": "Get all observations made with a specific instrument",
		},
		"objects": gin.H{
			"GET /api/objects":                 "Get all objects",
			"POST /api/objects":                "Create a new object",
			"GET /api/objects/:id":             "Get a specific object",
			"PUT /api/objects/:id":             "Update a specific object",
			"DELETE /api/objects/:id":          "Delete a specific object",
			"GET /api/objects/:id/observations": "Get all observations of a specific object",
		},
		"observations": gin.H{
			"GET /api/observations":        "Get all observations",
			"POST /api/observations":       "Create a new observation",
			"GET /api/observations/:id":    "Get a specific observation",
			"PUT /api/observations/:id":    "Update a specific observation",
			"DELETE /api/observations/:id": "Delete a specific observation",
			"GET /api/observations/search": "Search observations with filters (params: start_date, end_date, object_id, place_id, instrument_id)",
			"POST /api/observations/import": "Bulk import observations from an .xlsx worksheet",
		},
	},
}
