package dtos

import "time"

// Datetime travels as an ISO-8601 string and is parsed at the boundary; a
// trailing "Z" is accepted as the "+00:00" offset.
type CreateObservationDTO struct {
	Object      *int    `json:"object"`
	Place       *int    `json:"place"`
	Instrument  *int    `json:"instrument"`
	Datetime    *string `json:"datetime"`
	Observation *string `json:"observation"`
	Prop1       *int    `json:"prop1"`
	Prop1Value  *string `json:"prop1value"`
}

type UpdateObservationDTO struct {
	Object      *int    `json:"object"`
	Place       *int    `json:"place"`
	Instrument  *int    `json:"instrument"`
	Datetime    *string `json:"datetime"`
	Observation *string `json:"observation"`
	Prop1       *int    `json:"prop1"`
	Prop1Value  *string `json:"prop1value"`
}

// ObservationFilters carries the parsed /api/observations/search query
// parameters; nil fields mean the filter was not supplied. Filters combine
// with logical AND.
type ObservationFilters struct {
	StartDate  *time.Time
	EndDate    *time.Time
	ObjectId   *int
	PlaceId    *int
	Instrument *int
}
