// Package web serves the server-rendered dashboard. It reads through the
// same services as the JSON API; templates are loaded by main before
// registration.
package web

import (
	"net/http"

	"github.com/astrolog/AstroLog-Backend/src/models"
	"github.com/astrolog/AstroLog-Backend/src/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type handlers struct {
	database     *gorm.DB
	types        *services.TypeService
	properties   *services.PropertyService
	places       *services.PlaceService
	instruments  *services.InstrumentService
	objects      *services.ObjectService
	observations *services.ObservationService
}

// Register mounts the dashboard under /web.
func Register(router *gin.Engine, database *gorm.DB) {
	h := &handlers{
		database:     database,
		types:        services.NewTypeService(database),
		properties:   services.NewPropertyService(database),
		places:       services.NewPlaceService(database),
		instruments:  services.NewInstrumentService(database),
		objects:      services.NewObjectService(database),
		observations: services.NewObservationService(database),
	}

	web := router.Group("/web")
	{
		web.GET("", h.dashboard)
		web.GET("/types", h.listTypes)
		web.GET("/properties", h.listProperties)
		web.GET("/places", h.listPlaces)
		web.GET("/instruments", h.listInstruments)
		web.GET("/objects", h.listObjects)
		web.GET("/observations", h.listObservations)
	}
}

func (h *handlers) dashboard(ctx *gin.Context) {
	counts := gin.H{}
	tables := map[string]interface{}{
		"types":        &models.TypeModel{},
		"properties":   &models.PropertyModel{},
		"places":       &models.PlaceModel{},
		"instruments":  &models.InstrumentModel{},
		"objects":      &models.ObjectModel{},
		"observations": &models.ObservationModel{},
	}
	for name, model := range tables {
		var count int64
		if err := h.database.Model(model).Count(&count).Error; err == nil {
			counts[name] = count
		} else {
			counts[name] = 0
		}
	}

	recent, err := h.observations.Recent(5)
	if err != nil {
		recent = nil
	}

	ctx.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Counts": counts,
		"Recent": recent,
	})
}

func (h *handlers) listTypes(ctx *gin.Context) {
	types, err := h.types.All()
	if err != nil {
		types = nil
	}
	ctx.HTML(http.StatusOK, "types.html", gin.H{"Types": types})
}

func (h *handlers) listProperties(ctx *gin.Context) {
	properties, err := h.properties.All()
	if err != nil {
		properties = nil
	}
	ctx.HTML(http.StatusOK, "properties.html", gin.H{"Properties": properties})
}

func (h *handlers) listPlaces(ctx *gin.Context) {
	places, err := h.places.All()
	if err != nil {
		places = nil
	}
	ctx.HTML(http.StatusOK, "places.html", gin.H{"Places": places})
}

func (h *handlers) listInstruments(ctx *gin.Context) {
	instruments, err := h.instruments.All()
	if err != nil {
		instruments = nil
	}
	ctx.HTML(http.StatusOK, "instruments.html", gin.H{"Instruments": instruments})
}

func (h *handlers) listObjects(ctx *gin.Context) {
	objects, err := h.objects.All()
	if err != nil {
		objects = nil
	}
	ctx.HTML(http.StatusOK, "objects.html", gin.H{"Objects": objects})
}

func (h *handlers) listObservations(ctx *gin.Context) {
	observations, err := h.observations.All()
	if err != nil {
		observations = nil
	}
	ctx.HTML(http.StatusOK, "observations.html", gin.H{"Observations": observations})
}
