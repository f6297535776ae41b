package controllers

import (
	"net/http"
	"strconv"

	"github.com/astrolog/AstroLog-Backend/src/dtos"
	"github.com/astrolog/AstroLog-Backend/src/services"
	"github.com/astrolog/AstroLog-Backend/src/utils"
	"github.com/gin-gonic/gin"
)

type ObservationController struct {
	service *services.ObservationService
}

func NewObservationController(service *services.ObservationService) *ObservationController {
	return &ObservationController{service: service}
}

// GetAllObservations handles GET requests to retrieve all observation records
func (c *ObservationController) GetAllObservations(ctx *gin.Context) {
	observations, err := c.service.All()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, observations)
}

// GetObservationByID handles GET requests to retrieve an observation record by ID
func (c *ObservationController) GetObservationByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "observation")
	if !ok {
		return
	}
	obs, err := c.service.ByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, obs)
}

// CreateObservation handles POST requests to create a new observation record
func (c *ObservationController) CreateObservation(ctx *gin.Context) {
	dto, ok := bindJSON[dtos.CreateObservationDTO](ctx)
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

// UpdateObservation handles PUT requests to partially update an observation record by ID
func (c *ObservationController) UpdateObservation(ctx *gin.Context) {
	id, ok := parseID(ctx, "observation")
	if !ok {
		return
	}
	dto, ok := bindJSON[dtos.UpdateObservationDTO](ctx)
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

// DeleteObservation handles DELETE requests to delete an observation record by ID
func (c *ObservationController) DeleteObservation(ctx *gin.Context) {
	id, ok := parseID(ctx, "observation")
	if !ok {
		return
	}
	if err := c.service.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetObservationsByObject handles GET requests for the observations of one object
func (c *ObservationController) GetObservationsByObject(ctx *gin.Context) {
	id, ok := parseID(ctx, "object")
	if !ok {
		return
	}
	observations, err := c.service.ByObject(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, observations)
}

// GetObservationsByPlace handles GET requests for the observations made at one place
func (c *ObservationController) GetObservationsByPlace(ctx *gin.Context) {
	id, ok := parseID(ctx, "place")
	if !ok {
		return
	}
	observations, err := c.service.ByPlace(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, observations)
}

// GetObservationsByInstrument handles GET requests for the observations made with one instrument
func (c *ObservationController) GetObservationsByInstrument(ctx *gin.Context) {
	id, ok := parseID(ctx, "instrument")
	if !ok {
		return
	}
	observations, err := c.service.ByInstrument(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, observations)
}

// SearchObservations handles GET requests to filter observations by date
// range and parent ids; all supplied filters must match
func (c *ObservationController) SearchObservations(ctx *gin.Context) {
	filters := &dtos.ObservationFilters{}

	if raw := ctx.Query("start_date"); raw != "" {
		start, err := utils.ParseISO8601(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, message("Invalid start_date format. Use ISO format (YYYY-MM-DDTHH:MM:SS)"))
			return
		}
		filters.StartDate = &start
	}
	if raw := ctx.Query("end_date"); raw != "" {
		end, err := utils.ParseISO8601(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, message("Invalid end_date format. Use ISO format (YYYY-MM-DDTHH:MM:SS)"))
			return
		}
		filters.EndDate = &end
	}
	if raw := ctx.Query("object_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, message("Invalid object_id format. Must be an integer"))
			return
		}
		filters.ObjectId = &id
	}
	if raw := ctx.Query("place_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, message("Invalid place_id format. Must be an integer"))
			return
		}
		filters.PlaceId = &id
	}
	if raw := ctx.Query("instrument_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, message("Invalid instrument_id format. Must be an integer"))
			return
		}
		filters.Instrument = &id
	}

	observations, err := c.service.Search(filters)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, observations)
}

// ImportObservations handles POST requests that upload an .xlsx worksheet of
// observations, one per row
func (c *ObservationController) ImportObservations(ctx *gin.Context) {
	file, _, err := ctx.Request.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, message("No file provided"))
		return
	}
	defer file.Close()

	result, err := c.service.ImportFromExcel(file)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
