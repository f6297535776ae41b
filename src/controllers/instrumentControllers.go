package controllers

import (
	"net/http"

	"github.com/astrolog/AstroLog-Backend/src/dtos"
	"github.com/astrolog/AstroLog-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type InstrumentController struct {
	service *services.InstrumentService
}

func NewInstrumentController(service *services.InstrumentService) *InstrumentController {
	return &InstrumentController{service: service}
}

// GetAllInstruments handles GET requests to retrieve all instrument records
func (c *InstrumentController) GetAllInstruments(ctx *gin.Context) {
	instruments, err := c.service.All()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, instruments)
}

// GetInstrumentByID handles GET requests to retrieve an instrument record by ID
func (c *InstrumentController) GetInstrumentByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "instrument")
	if !ok {
		return
	}
	instrument, err := c.service.ByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, instrument)
}

// CreateInstrument handles POST requests to create a new instrument record
func (c *InstrumentController) CreateInstrument(ctx *gin.Context) {
	dto, ok := bindJSON[dtos.CreateInstrumentDTO](ctx)
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

// UpdateInstrument handles PUT requests to partially update an instrument record by ID
func (c *InstrumentController) UpdateInstrument(ctx *gin.Context) {
	id, ok := parseID(ctx, "instrument")
	if !ok {
		return
	}
	dto, ok := bindJSON[dtos.UpdateInstrumentDTO](ctx)
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

// DeleteInstrument handles DELETE requests to delete an instrument record by ID
func (c *InstrumentController) DeleteInstrument(ctx *gin.Context) {
	id, ok := parseID(ctx, "instrument")
	if !ok {
		return
	}
	if err := c.service.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
