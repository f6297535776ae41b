// Package client is a thin Go wrapper around the Astronomy Observations
// API: one method per endpoint, JSON in, JSON out.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/astrolog/AstroLog-Backend/src/dtos"
	"github.com/astrolog/AstroLog-Backend/src/models"
	"github.com/astrolog/AstroLog-Backend/src/services"
)

// APIError is any non-2xx response, carrying the server's message body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// do issues the request and decodes the response into out (which may be nil
// for 204 responses). Error bodies become *APIError.
func (c *Client) do(method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: "Unknown error"}
		var payload struct {
			Message string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr == nil && payload.Message != "" {
			apiErr.Message = payload.Message
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Types

func (c *Client) GetTypes() ([]models.TypeModel, error) {
	var types []models.TypeModel
	err := c.do(http.MethodGet, "/api/types", nil, &types)
	return types, err
}

func (c *Client) GetType(id int) (*models.TypeModel, error) {
	var t models.TypeModel
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/types/%d", id), nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) CreateType(dto *dtos.CreateTypeDTO) (*models.TypeModel, error) {
	var t models.TypeModel
	if err := c.do(http.MethodPost, "/api/types", dto, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) UpdateType(id int, dto *dtos.UpdateTypeDTO) (*models.TypeModel, error) {
	var t models.TypeModel
	if err := c.do(http.MethodPut, fmt.Sprintf("/api/types/%d", id), dto, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) DeleteType(id int) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/types/%d", id), nil, nil)
}

// Properties

func (c *Client) GetProperties() ([]models.PropertyModel, error) {
	var properties []models.PropertyModel
	err := c.do(http.MethodGet, "/api/properties", nil, &properties)
	return properties, err
}

func (c *Client) GetProperty(id int) (*models.PropertyModel, error) {
	var p models.PropertyModel
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/properties/%d", id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreateProperty(dto *dtos.CreatePropertyDTO) (*models.PropertyModel, error) {
	var p models.PropertyModel
	if err := c.do(http.MethodPost, "/api/properties", dto, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateProperty(id int, dto *dtos.UpdatePropertyDTO) (*models.PropertyModel, error) {
	var p models.PropertyModel
	if err := c.do(http.MethodPut, fmt.Sprintf("/api/properties/%d", id), dto, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeleteProperty(id int) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/properties/%d", id), nil, nil)
}

// Places

func (c *Client) GetPlaces() ([]models.PlaceModel, error) {
	var places []models.PlaceModel
	err := c.do(http.MethodGet, "/api/places", nil, &places)
	return places, err
}

func (c *Client) GetPlace(id int) (*models.PlaceModel, error) {
	var p models.PlaceModel
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/places/%d", id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreatePlace(dto *dtos.CreatePlaceDTO) (*models.PlaceModel, error) {
	var p models.PlaceModel
	if err := c.do(http.MethodPost, "/api/places", dto, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdatePlace(id int, dto *dtos.UpdatePlaceDTO) (*models.PlaceModel, error) {
	var p models.PlaceModel
	if err := c.do(http.MethodPut, fmt.Sprintf("/api/places/%d", id), dto, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeletePlace(id int) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/places/%d", id), nil, nil)
}

// Instruments

func (c *Client) GetInstruments() ([]models.InstrumentModel, error) {
	var instruments []models.InstrumentModel
	err := c.do(http.MethodGet, "/api/instruments", nil, &instruments)
	return instruments, err
}

func (c *Client) GetInstrument(id int) (*models.InstrumentModel, error) {
	var i models.InstrumentModel
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/instruments/%d", id), nil, &i); err != nil {
		return nil, err
	}
	return &i, nil
}

func (c *Client) CreateInstrument(dto *dtos.CreateInstrumentDTO) (*models.InstrumentModel, error) {
	var i models.InstrumentModel
	if err := c.do(http.MethodPost, "/api/instruments", dto, &i); err != nil {
		return nil, err
	}
	return &i, nil
}

func (c *Client) UpdateInstrument(id int, dto *dtos.UpdateInstrumentDTO) (*models.InstrumentModel, error) {
	var i models.InstrumentModel
	if err := c.do(http.MethodPut, fmt.Sprintf("/api/instruments/%d", id), dto, &i); err != nil {
		return nil, err
	}
	return &i, nil
}

func (c *Client) DeleteInstrument(id int) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/instruments/%d", id), nil, nil)
}

// Objects

func (c *Client) GetObjects() ([]models.ObjectModel, error) {
	var objects []models.ObjectModel
	err := c.do(http.MethodGet, "/api/objects", nil, &objects)
	return objects, err
}

func (c *Client) GetObject(id int) (*models.ObjectModel, error) {
	var o models.ObjectModel
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/objects/%d", id), nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) CreateObject(dto *dtos.CreateObjectDTO) (*models.ObjectModel, error) {
	var o models.ObjectModel
	if err := c.do(http.MethodPost, "/api/objects", dto, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) UpdateObject(id int, dto *dtos.UpdateObjectDTO) (*models.ObjectModel, error) {
	var o models.ObjectModel
	if err := c.do(http.MethodPut, fmt.Sprintf("/api/objects/%d", id), dto, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) DeleteObject(id int) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/objects/%d", id), nil, nil)
}

// Observations

func (c *Client) GetObservations() ([]models.ObservationModel, error) {
	var observations []models.ObservationModel
	err := c.do(http.MethodGet, "/api/observations", nil, &observations)
	return observations, err
}

func (c *Client) GetObservation(id int) (*models.ObservationModel, error) {
	var o models.ObservationModel
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/observations/%d", id), nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) CreateObservation(dto *dtos.CreateObservationDTO) (*models.ObservationModel, error) {
	var o models.ObservationModel
	if err := c.do(http.MethodPost, "/api/observations", dto, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) UpdateObservation(id int, dto *dtos.UpdateObservationDTO) (*models.ObservationModel, error) {
	var o models.ObservationModel
	if err := c.do(http.MethodPut, fmt.Sprintf("/api/observations/%d", id), dto, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) DeleteObservation(id int) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/observations/%d", id), nil, nil)
}

// Relationship and search endpoints

func (c *Client) GetObjectObservations(objectId int) ([]models.ObservationModel, error) {
	var observations []models.ObservationModel
	err := c.do(http.MethodGet, fmt.Sprintf("/api/objects/%d/observations", objectId), nil, &observations)
	return observations, err
}

func (c *Client) GetPlaceObservations(placeId int) ([]models.ObservationModel, error) {
	var observations []models.ObservationModel
	err := c.do(http.MethodGet, fmt.Sprintf("/api/places/%d/observations", placeId), nil, &observations)
	return observations, err
}

func (c *Client) GetInstrumentObservations(instrumentId int) ([]models.ObservationModel, error) {
	var observations []models.ObservationModel
	err := c.do(http.MethodGet, fmt.Sprintf("/api/instruments/%d/observations", instrumentId), nil, &observations)
	return observations, err
}

// SearchOptions are the raw query parameters of the search endpoint; empty
// strings are omitted.
type SearchOptions struct {
	StartDate    string
	EndDate      string
	ObjectId     string
	PlaceId      string
	InstrumentId string
}

func (c *Client) SearchObservations(opts SearchOptions) ([]models.ObservationModel, error) {
	params := url.Values{}
	if opts.StartDate != "" {
		params.Set("start_date", opts.StartDate)
	}
	if opts.EndDate != "" {
		params.Set("end_date", opts.EndDate)
	}
	if opts.ObjectId != "" {
		params.Set("object_id", opts.ObjectId)
	}
	if opts.PlaceId != "" {
		params.Set("place_id", opts.PlaceId)
	}
	if opts.InstrumentId != "" {
		params.Set("instrument_id", opts.InstrumentId)
	}

	path := "/api/observations/search"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var observations []models.ObservationModel
	err := c.do(http.MethodGet, path, nil, &observations)
	return observations, err
}

// ImportObservations uploads an .xlsx worksheet to the bulk import endpoint.
func (c *Client) ImportObservations(filename string, content io.Reader) (*services.ImportResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/api/observations/import", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: "Unknown error"}
		var payload struct {
			Message string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr == nil && payload.Message != "" {
			apiErr.Message = payload.Message
		}
		return nil, apiErr
	}

	var result services.ImportResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Health reports whether the API considers its storage reachable.
func (c *Client) Health() error {
	return c.do(http.MethodGet, "/health", nil, nil)
}
