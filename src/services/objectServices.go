package services

import (
	"errors"

	"github.com/astrolog/AstroLog-Backend/src/dtos"
	"github.com/astrolog/AstroLog-Backend/src/models"
	"gorm.io/gorm"
)

type ObjectService struct {
	Store[models.ObjectModel]
}

// NewObjectService creates a new instance of ObjectService
func NewObjectService(db *gorm.DB) *ObjectService {
	return &ObjectService{Store[models.ObjectModel]{db: db, name: "Object"}}
}

// Create validates required fields, resolves the Type reference and persists
// a new Object record. The existence check and the insert run in one
// transaction so the reference cannot disappear between them.
func (s *ObjectService) Create(dto *dtos.CreateObjectDTO) (*models.ObjectModel, error) {
	if dto.Name == nil {
		return nil, &ValidationError{Message: "Name is required"}
	}
	if dto.Type == nil {
		return nil, &ValidationError{Message: "Type is required"}
	}

	obj := models.ObjectModel{
		Name:        *dto.Name,
		Designation: dto.Designation,
		Type:        *dto.Type,
		Props:       dto.Props,
	}
	if dto.Id != nil {
		obj.Id = *dto.Id
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := exists[models.TypeModel](tx, *dto.Type)
		if err != nil {
			return err
		}
		if !ok {
			return &RefError{Message: "Type not found"}
		}
		return tx.Create(&obj).Error
	})
	if err != nil {
		return nil, err
	}
	return &obj, nil
}

// Update applies the fields present in the payload to an existing Object
// record, re-validating the Type reference when it is supplied
func (s *ObjectService) Update(id int, dto *dtos.UpdateObjectDTO) (*models.ObjectModel, error) {
	obj, err := s.ByID(id)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if dto.Type != nil {
			ok, err := exists[models.TypeModel](tx, *dto.Type)
			if err != nil {
				return err
			}
			if !ok {
				return &RefError{Message: "Type not found"}
			}
			obj.Type = *dto.Type
		}
		if dto.Name != nil {
			obj.Name = *dto.Name
		}
		if dto.Designation != nil {
			obj.Designation = dto.Designation
		}
		if dto.Props != nil {
			obj.Props = dto.Props
		}
		return tx.Save(obj).Error
	})
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// Delete removes an Object record unless any Observation still references it
func (s *ObjectService) Delete(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var obj models.ObjectModel
		if err := tx.First(&obj, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return s.notFound()
			}
			return err
		}

		var dependents int64
		if err := tx.Model(&models.ObservationModel{}).Where("object = ?", id).Count(&dependents).Error; err != nil {
			return err
		}
		if dependents > 0 {
			return &ConflictError{Message: "Cannot delete object that is in use"}
		}

		return tx.Delete(&models.ObjectModel{}, id).Error
	})
}
