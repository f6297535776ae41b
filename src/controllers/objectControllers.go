package controllers

import (
	"net/http"

	"github.com/astrolog/AstroLog-Backend/src/dtos"
	"github.com/astrolog/AstroLog-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type ObjectController struct {
	service *services.ObjectService
}

func NewObjectController(service *services.ObjectService) *ObjectController {
	return &ObjectController{service: service}
}

// GetAllObjects handles GET requests to retrieve all object records
func (c *ObjectController) GetAllObjects(ctx *gin.Context) {
	objects, err := c.service.All()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, objects)
}

// GetObjectByID handles GET requests to retrieve an object record by ID
func (c *ObjectController) GetObjectByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "object")
	if !ok {
		return
	}
	obj, err := c.service.ByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, obj)
}

// CreateObject handles POST requests to create a new object record
func (c *ObjectController) CreateObject(ctx *gin.Context) {
	dto, ok := bindJSON[dtos.CreateObjectDTO](ctx)
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

// UpdateObject handles PUT requests to partially update an object record by ID
func (c *ObjectController) UpdateObject(ctx *gin.Context) {
	id, ok := parseID(ctx, "object")
	if !ok {
		return
	}
	dto, ok := bindJSON[dtos.UpdateObjectDTO](ctx)
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

// DeleteObject handles DELETE requests to delete an object record by ID
func (c *ObjectController) DeleteObject(ctx *gin.Context) {
	id, ok := parseID(ctx, "object")
	if !ok {
		return
	}
	if err := c.service.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
