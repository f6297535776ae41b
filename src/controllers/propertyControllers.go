package controllers

import (
	"net/http"

	"github.com/astrolog/AstroLog-Backend/src/dtos"
	"github.com/astrolog/AstroLog-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type PropertyController struct {
	service *services.PropertyService
}

func NewPropertyController(service *services.PropertyService) *PropertyController {
	return &PropertyController{service: service}
}

// GetAllProperties handles GET requests to retrieve all property records
func (c *PropertyController) GetAllProperties(ctx *gin.Context) {
	properties, err := c.service.All()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, properties)
}

// GetPropertyByID handles GET requests to retrieve a property record by ID
func (c *PropertyController) GetPropertyByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "property")
	if !ok {
		return
	}
	prop, err := c.service.ByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, prop)
}

// CreateProperty handles POST requests to create a new property record
func (c *PropertyController) CreateProperty(ctx *gin.Context) {
	dto, ok := bindJSON[dtos.CreatePropertyDTO](ctx)
	if !ok {
		return
	}
	created, err := c.service.Create(dto)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateProperty handles PUT requests to partially update a property record by ID
func (c *PropertyController) UpdateProperty(ctx *gin.Context) {
	id, ok := parseID(ctx, "property")
	if !ok {
		return
	}
	dto, ok := bindJSON[dtos.UpdatePropertyDTO](ctx)
	if !ok {
		return
	}
	updated, err := c.service.Update(id, dto)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteProperty handles DELETE requests to delete a property record by ID
func (c *PropertyController) DeleteProperty(ctx *gin.Context) {
	id, ok := parseID(ctx, "property")
	if !ok {
		return
	}
	if err := c.service.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
