package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/astrolog/AstroLog-Backend/src/services"
	"github.com/gin-gonic/gin"
)

// Every non-2xx response carries a single {"message": ...} body.

func message(text string) gin.H {
	return gin.H{"message": text}
}

// parseID reads the :id path parameter; on failure it writes the 400
// response itself and reports false.
func parseID(ctx *gin.Context, resource string) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, message("Invalid "+resource+" ID"))
		return 0, false
	}
	return id, true
}

// bindJSON decodes the request body into a DTO. Missing bodies are 400; a
// JSON value of the wrong type for a declared field is a schema violation
// and responds 422.
func bindJSON[D any](ctx *gin.Context) (*D, bool) {
	var dto D
	err := ctx.ShouldBindJSON(&dto)
	if err == nil {
		return &dto, true
	}

	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr):
		ctx.JSON(http.StatusUnprocessableEntity, message("Invalid type for field '"+typeErr.Field+"'"))
	case errors.Is(err, io.EOF):
		ctx.JSON(http.StatusBadRequest, message("No input data provided"))
	default:
		ctx.JSON(http.StatusBadRequest, message("Invalid JSON body"))
	}
	return nil, false
}

// respondError maps service errors onto the HTTP taxonomy: validation,
// reference and conflict failures are 400, missing rows are 404, anything
// else is a generic 500.
func respondError(ctx *gin.Context, err error) {
	var notFound *services.NotFoundError
	var validation *services.ValidationError
	var ref *services.RefError
	var conflict *services.ConflictError

	switch {
	case errors.As(err, &notFound):
		ctx.JSON(http.StatusNotFound, message(notFound.Message))
	case errors.As(err, &validation):
		ctx.JSON(http.StatusBadRequest, message(validation.Message))
	case errors.As(err, &ref):
		ctx.JSON(http.StatusBadRequest, message(ref.Message))
	case errors.As(err, &conflict):
		ctx.JSON(http.StatusBadRequest, message(conflict.Message))
	default:
		ctx.JSON(http.StatusInternalServerError, message("An unexpected error occurred"))
	}
}
