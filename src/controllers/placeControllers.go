package controllers

import (
	"net/http"

	"github.com/astrolog/AstroLog-Backend/src/dtos"
	"github.com/astrolog/AstroLog-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type PlaceController struct {
	service *services.PlaceService
}

func NewPlaceController(service *services.PlaceService) *PlaceController {
	return &PlaceController{service: service}
}

// GetAllPlaces handles GET requests to retrieve all place records
func (c *PlaceController) GetAllPlaces(ctx *gin.Context) {
	places, err := c.service.All()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, places)
}

// GetPlaceByID handles GET requests to retrieve a place record by ID
func (c *PlaceController) GetPlaceByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "place")
	if !ok {
		return
	}
	place, err := c.service.ByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, place)
}

// CreatePlace handles POST requests to create a new place record
func (c *PlaceController) CreatePlace(ctx *gin.Context) {
	dto, ok := bindJSON[dtos.CreatePlaceDTO](ctx)
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

// UpdatePlace handles PUT requests to partially update a place record by ID
func (c *PlaceController) UpdatePlace(ctx *gin.Context) {
	id, ok := parseID(ctx, "place")
	if !ok {
		return
	}
	dto, ok := bindJSON[dtos.UpdatePlaceDTO](ctx)
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

// DeletePlace handles DELETE requests to delete a place record by ID
func (c *PlaceController) DeletePlace(ctx *gin.Context) {
	id, ok := parseID(ctx, "place")
	if !ok {
		return
	}
	if err := c.service.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
