package controllers

import (
	"net/http"

	"github.com/astrolog/AstroLog-Backend/src/dtos"
	"github.com/astrolog/AstroLog-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type TypeController struct {
	service *services.TypeService
}

func NewTypeController(service *services.TypeService) *TypeController {
	return &TypeController{service: service}
}

// GetAllTypes handles GET requests to retrieve all type records
func (c *TypeController) GetAllTypes(ctx *gin.Context) {
	types, err := c.service.All()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, types)
}

// GetTypeByID handles GET requests to retrieve a type record by ID
func (c *TypeController) GetTypeByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "type")
	if !ok {
		return
	}
	typeRow, err := c.service.ByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, typeRow)
}

// CreateType handles POST requests to create a new type record
func (c *TypeController) CreateType(ctx *gin.Context) {
	dto, ok := bindJSON[dtos.CreateTypeDTO](ctx)
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

// UpdateType handles PUT requests to partially update a type record by ID
func (c *TypeController) UpdateType(ctx *gin.Context) {
	id, ok := parseID(ctx, "type")
	if !ok {
		return
	}
	dto, ok := bindJSON[dtos.UpdateTypeDTO](ctx)
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

// DeleteType handles DELETE requests to delete a type record by ID
func (c *TypeController) DeleteType(ctx *gin.Context) {
	id, ok := parseID(ctx, "type")
	if !ok {
		return
	}
	if err := c.service.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
