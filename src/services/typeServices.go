package services

import (
	"errors"

	"github.com/astrolog/AstroLog-Backend/src/dtos"
	"github.com/astrolog/AstroLog-Backend/src/models"
	"gorm.io/gorm"
)

type TypeService struct {
	Store[models.TypeModel]
}

// NewTypeService creates a new instance of TypeService
func NewTypeService(db *gorm.DB) *TypeService {
	return &TypeService{Store[models.TypeModel]{db: db, name: "Type"}}
}

// Create validates required fields and persists a new Type record
func (s *TypeService) Create(dto *dtos.CreateTypeDTO) (*models.TypeModel, error) {
	if dto.Name == nil {
		return nil, &ValidationError{Message: "Name is required"}
	}

	typeRow := models.TypeModel{Name: *dto.Name}
	if dto.Id != nil {
		typeRow.Id = *dto.Id
	}

	if err := s.Insert(&typeRow); err != nil {
		return nil, err
	}
	return &typeRow, nil
}

// Update applies the fields present in the payload to an existing Type record
func (s *TypeService) Update(id int, dto *dtos.UpdateTypeDTO) (*models.TypeModel, error) {
	typeRow, err := s.ByID(id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		typeRow.Name = *dto.Name
	}

	if err := s.db.Save(typeRow).Error; err != nil {
		return nil, err
	}
	return typeRow, nil
}

// Delete removes a Type record unless any Object still references it
func (s *TypeService) Delete(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var typeRow models.TypeModel
		if err := tx.First(&typeRow, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return s.notFound()
			}
			return err
		}

		var dependents int64
		if err := tx.Model(&models.ObjectModel{}).Where("type = ?", id).Count(&dependents).Error; err != nil {
			return err
		}
		if dependents > 0 {
			return &ConflictError{Message: "Cannot delete type that is in use"}
		}

		return tx.Delete(&models.TypeModel{}, id).Error
	})
}
