package services

import (
	"errors"

	"github.com/astrolog/AstroLog-Backend/src/dtos"
	"github.com/astrolog/AstroLog-Backend/src/models"
	"gorm.io/gorm"
)

type PlaceService struct {
	Store[models.PlaceModel]
}

// NewPlaceService creates a new instance of PlaceService
func NewPlaceService(db *gorm.DB) *PlaceService {
	return &PlaceService{Store[models.PlaceModel]{db: db, name: "Place"}}
}

// Create validates required fields and persists a new Place record.
// Place ids are always server-generated.
func (s *PlaceService) Create(dto *dtos.CreatePlaceDTO) (*models.PlaceModel, error) {
	if dto.Name == nil {
		return nil, &ValidationError{Message: "Name is required"}
	}
	if dto.Lat == nil {
		return nil, &ValidationError{Message: "Latitude is required"}
	}
	if dto.Lon == nil {
		return nil, &ValidationError{Message: "Longitude is required"}
	}

	place := models.PlaceModel{
		Name:     *dto.Name,
		Lat:      *dto.Lat,
		Lon:      *dto.Lon,
		Alt:      dto.Alt,
		Timezone: dto.Timezone,
	}

	if err := s.Insert(&place); err != nil {
		return nil, err
	}
	return &place, nil
}

// Update applies the fields present in the payload to an existing Place record
func (s *PlaceService) Update(id int, dto *dtos.UpdatePlaceDTO) (*models.PlaceModel, error) {
	place, err := s.ByID(id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		place.Name = *dto.Name
	}
	if dto.Lat != nil {
		place.Lat = *dto.Lat
	}
	if dto.Lon != nil {
		place.Lon = *dto.Lon
	}
	if dto.Alt != nil {
		place.Alt = dto.Alt
	}
	if dto.Timezone != nil {
		place.Timezone = dto.Timezone
	}

	if err := s.db.Save(place).Error; err != nil {
		return nil, err
	}
	return place, nil
}

// Delete removes a Place record unless any Observation still references it
func (s *PlaceService) Delete(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var place models.PlaceModel
		if err := tx.First(&place, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return s.notFound()
			}
			return err
		}

		var dependents int64
		if err := tx.Model(&models.ObservationModel{}).Where("place = ?", id).Count(&dependents).Error; err != nil {
			return err
		}
		if dependents > 0 {
			return &ConflictError{Message: "Cannot delete place that is in use"}
		}

		return tx.Delete(&models.PlaceModel{}, id).Error
	})
}
