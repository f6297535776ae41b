package services

import (
	"errors"

	"github.com/astrolog/AstroLog-Backend/src/dtos"
	"github.com/astrolog/AstroLog-Backend/src/models"
	"gorm.io/gorm"
)

type InstrumentService struct {
	Store[models.InstrumentModel]
}

// NewInstrumentService creates a new instance of InstrumentService
func NewInstrumentService(db *gorm.DB) *InstrumentService {
	return &InstrumentService{Store[models.InstrumentModel]{db: db, name: "Instrument"}}
}

// Create validates required fields and persists a new Instrument record
func (s *InstrumentService) Create(dto *dtos.CreateInstrumentDTO) (*models.InstrumentModel, error) {
	if dto.Name == nil {
		return nil, &ValidationError{Message: "Name is required"}
	}

	instrument := models.InstrumentModel{
		Name:     *dto.Name,
		Aperture: dto.Aperture,
		Power:    dto.Power,
	}
	if dto.Id != nil {
		instrument.Id = *dto.Id
	}

	if err := s.Insert(&instrument); err != nil {
		return nil, err
	}
	return &instrument, nil
}

// Update applies the fields present in the payload to an existing Instrument record
func (s *InstrumentService) Update(id int, dto *dtos.UpdateInstrumentDTO) (*models.InstrumentModel, error) {
	instrument, err := s.ByID(id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		instrument.Name = *dto.Name
	}
	if dto.Aperture != nil {
		instrument.Aperture = dto.Aperture
	}
	if dto.Power != nil {
		instrument.Power = dto.Power
	}

	if err := s.db.Save(instrument).Error; err != nil {
		return nil, err
	}
	return instrument, nil
}

// Delete removes an Instrument record unless any Observation still references it
func (s *InstrumentService) Delete(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var instrument models.InstrumentModel
		if err := tx.First(&instrument, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return s.notFound()
			}
			return err
		}

		var dependents int64
		if err := tx.Model(&models.ObservationModel{}).Where("instrument = ?", id).Count(&dependents).Error; err != nil {
			return err
		}
		if dependents > 0 {
			return &ConflictError{Message: "Cannot delete instrument that is in use"}
		}

		return tx.Delete(&models.InstrumentModel{}, id).Error
	})
}
