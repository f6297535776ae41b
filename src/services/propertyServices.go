package services

import (
	"errors"

	"github.com/astrolog/AstroLog-Backend/src/dtos"
	"github.com/astrolog/AstroLog-Backend/src/models"
	"gorm.io/gorm"
)

type PropertyService struct {
	Store[models.PropertyModel]
}

// NewPropertyService creates a new instance of PropertyService
func NewPropertyService(db *gorm.DB) *PropertyService {
	return &PropertyService{Store[models.PropertyModel]{db: db, name: "Property"}}
}

// Create validates required fields and persists a new Property record
func (s *PropertyService) Create(dto *dtos.CreatePropertyDTO) (*models.PropertyModel, error) {
	if dto.Name == nil {
		return nil, &ValidationError{Message: "Name is required"}
	}
	if dto.ValueType == nil {
		return nil, &ValidationError{Message: "Value type is required"}
	}

	prop := models.PropertyModel{Name: *dto.Name, ValueType: *dto.ValueType}
	if dto.Id != nil {
		prop.Id = *dto.Id
	}

	if err := s.Insert(&prop); err != nil {
		return nil, err
	}
	return &prop, nil
}

// Update applies the fields present in the payload to an existing Property record
func (s *PropertyService) Update(id int, dto *dtos.UpdatePropertyDTO) (*models.PropertyModel, error) {
	prop, err := s.ByID(id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		prop.Name = *dto.Name
	}
	if dto.ValueType != nil {
		prop.ValueType = *dto.ValueType
	}

	if err := s.db.Save(prop).Error; err != nil {
		return nil, err
	}
	return prop, nil
}

// Delete removes a Property record unless any Observation still references it
func (s *PropertyService) Delete(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var prop models.PropertyModel
		if err := tx.First(&prop, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return s.notFound()
			}
			return err
		}

		var dependents int64
		if err := tx.Model(&models.ObservationModel{}).Where("prop1 = ?", id).Count(&dependents).Error; err != nil {
			return err
		}
		if dependents > 0 {
			return &ConflictError{Message: "Cannot delete property that is in use"}
		}

		return tx.Delete(&models.PropertyModel{}, id).Error
	})
}
