package services

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/astrolog/AstroLog-Backend/src/dtos"
	"github.com/astrolog/AstroLog-Backend/src/models"
	"github.com/astrolog/AstroLog-Backend/src/utils"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ObservationService owns the fact table: CRUD, the per-parent listings, the
// filtered search and the spreadsheet bulk import.
type ObservationService struct {
	Store[models.ObservationModel]
}

type ImportResult struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}

// NewObservationService creates a new instance of ObservationService
func NewObservationService(db *gorm.DB) *ObservationService {
	return &ObservationService{Store[models.ObservationModel]{db: db, name: "Observation"}}
}

// Create validates required fields, resolves every reference and persists a
// new Observation record. Validation order is fixed: required fields first,
// then foreign keys, then the datetime value.
func (s *ObservationService) Create(dto *dtos.CreateObservationDTO) (*models.ObservationModel, error) {
	if dto.Object == nil {
		return nil, &ValidationError{Message: "Object is required"}
	}
	if dto.Place == nil {
		return nil, &ValidationError{Message: "Place is required"}
	}
	if dto.Instrument == nil {
		return nil, &ValidationError{Message: "Instrument is required"}
	}
	if dto.Datetime == nil {
		return nil, &ValidationError{Message: "Datetime is required"}
	}
	if dto.Observation == nil {
		return nil, &ValidationError{Message: "Observation text is required"}
	}

	obs := models.ObservationModel{
		Object:      *dto.Object,
		Place:       *dto.Place,
		Instrument:  *dto.Instrument,
		Observation: *dto.Observation,
		Prop1:       dto.Prop1,
		Prop1Value:  dto.Prop1Value,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := checkObservationRefs(tx, dto.Object, dto.Place, dto.Instrument, dto.Prop1); err != nil {
			return err
		}

		when, err := utils.ParseISO8601(*dto.Datetime)
		if err != nil {
			return &ValidationError{Message: "Invalid datetime format. Use ISO format (YYYY-MM-DDTHH:MM:SS)"}
		}
		obs.Datetime = when

		return tx.Create(&obs).Error
	})
	if err != nil {
		return nil, err
	}
	return &obs, nil
}

// Update applies the fields present in the payload to an existing
// Observation record, re-validating any supplied reference. An explicit null
// prop1 leaves the stored reference untouched.
func (s *ObservationService) Update(id int, dto *dtos.UpdateObservationDTO) (*models.ObservationModel, error) {
	obs, err := s.ByID(id)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := checkObservationRefs(tx, dto.Object, dto.Place, dto.Instrument, dto.Prop1); err != nil {
			return err
		}

		if dto.Object != nil {
			obs.Object = *dto.Object
		}
		if dto.Place != nil {
			obs.Place = *dto.Place
		}
		if dto.Instrument != nil {
			obs.Instrument = *dto.Instrument
		}
		if dto.Prop1 != nil {
			obs.Prop1 = dto.Prop1
		}
		if dto.Datetime != nil {
			when, err := utils.ParseISO8601(*dto.Datetime)
			if err != nil {
				return &ValidationError{Message: "Invalid datetime format. Use ISO format (YYYY-MM-DDTHH:MM:SS)"}
			}
			obs.Datetime = when
		}
		if dto.Observation != nil {
			obs.Observation = *dto.Observation
		}
		if dto.Prop1Value != nil {
			obs.Prop1Value = dto.Prop1Value
		}

		return tx.Save(obs).Error
	})
	if err != nil {
		return nil, err
	}
	return obs, nil
}

// Delete removes an Observation record; observations have no dependents
func (s *ObservationService) Delete(id int) error {
	var obs models.ObservationModel
	if err := s.db.First(&obs, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.notFound()
		}
		return err
	}
	return s.db.Delete(&models.ObservationModel{}, id).Error
}

// checkObservationRefs verifies each supplied reference against its table.
// Nil ids are skipped so the same check serves create and partial update.
func checkObservationRefs(tx *gorm.DB, object, place, instrument, prop1 *int) error {
	if object != nil {
		ok, err := exists[models.ObjectModel](tx, *object)
		if err != nil {
			return err
		}
		if !ok {
			return &RefError{Message: "Object not found"}
		}
	}
	if place != nil {
		ok, err := exists[models.PlaceModel](tx, *place)
		if err != nil {
			return err
		}
		if !ok {
			return &RefError{Message: "Place not found"}
		}
	}
	if instrument != nil {
		ok, err := exists[models.InstrumentModel](tx, *instrument)
		if err != nil {
			return err
		}
		if !ok {
			return &RefError{Message: "Instrument not found"}
		}
	}
	if prop1 != nil {
		ok, err := exists[models.PropertyModel](tx, *prop1)
		if err != nil {
			return err
		}
		if !ok {
			return &RefError{Message: "Property not found"}
		}
	}
	return nil
}

// ByObject lists the observations of one object. The parent is checked
// first; a missing parent is a NotFoundError, not an empty list.
func (s *ObservationService) ByObject(objectId int) ([]models.ObservationModel, error) {
	return s.byParent("object", objectId, func(tx *gorm.DB) (bool, error) {
		return exists[models.ObjectModel](tx, objectId)
	}, "Object not found")
}

// ByPlace lists the observations made at one place
func (s *ObservationService) ByPlace(placeId int) ([]models.ObservationModel, error) {
	return s.byParent("place", placeId, func(tx *gorm.DB) (bool, error) {
		return exists[models.PlaceModel](tx, placeId)
	}, "Place not found")
}

// ByInstrument lists the observations made with one instrument
func (s *ObservationService) ByInstrument(instrumentId int) ([]models.ObservationModel, error) {
	return s.byParent("instrument", instrumentId, func(tx *gorm.DB) (bool, error) {
		return exists[models.InstrumentModel](tx, instrumentId)
	}, "Instrument not found")
}

func (s *ObservationService) byParent(column string, id int, parentExists func(*gorm.DB) (bool, error), missing string) ([]models.ObservationModel, error) {
	ok, err := parentExists(s.db)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &NotFoundError{Message: missing}
	}

	rows := []models.ObservationModel{}
	if err := s.db.Where(column+" = ?", id).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Search returns the observations matching every supplied filter. No filters
// means the full table.
func (s *ObservationService) Search(filters *dtos.ObservationFilters) ([]models.ObservationModel, error) {
	query := s.db.Model(&models.ObservationModel{})

	if filters.StartDate != nil {
		query = query.Where("datetime >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("datetime <= ?", *filters.EndDate)
	}
	if filters.ObjectId != nil {
		query = query.Where("object = ?", *filters.ObjectId)
	}
	if filters.PlaceId != nil {
		query = query.Where("place = ?", *filters.PlaceId)
	}
	if filters.Instrument != nil {
		query = query.Where("instrument = ?", *filters.Instrument)
	}

	rows := []models.ObservationModel{}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Recent returns the newest observations by datetime, for the dashboard
func (s *ObservationService) Recent(limit int) ([]models.ObservationModel, error) {
	rows := []models.ObservationModel{}
	if err := s.db.Order("datetime DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ImportFromExcel reads an .xlsx worksheet and creates one observation per
// row. Expected columns: object, place, instrument, datetime, observation,
// prop1, prop1value. A non-numeric first row is skipped as the header; bad
// rows are collected into the result instead of aborting the import.
func (s *ObservationService) ImportFromExcel(r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &ValidationError{Message: "Invalid Excel file"}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &ValidationError{Message: "Excel file has no worksheets"}
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &ValidationError{Message: "Could not read worksheet " + sheets[0]}
	}

	result := &ImportResult{Imported: 0, Errors: []string{}}

	for i, row := range rows {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		objectId, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			if i == 0 {
				// header row
				continue
			}
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: object must be an integer", i+1))
			continue
		}

		dto, err := importRowToDTO(objectId, row)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}

		if _, err := s.Create(dto); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}
		result.Imported++
	}

	return result, nil
}

func importRowToDTO(objectId int, row []string) (*dtos.CreateObservationDTO, error) {
	cell := func(idx int) string {
		if idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	placeId, err := strconv.Atoi(cell(1))
	if err != nil {
		return nil, errors.New("place must be an integer")
	}
	instrumentId, err := strconv.Atoi(cell(2))
	if err != nil {
		return nil, errors.New("instrument must be an integer")
	}

	datetime := cell(3)
	observation := cell(4)
	if datetime == "" {
		return nil, errors.New("datetime is required")
	}
	if observation == "" {
		return nil, errors.New("observation text is required")
	}

	dto := &dtos.CreateObservationDTO{
		Object:      &objectId,
		Place:       &placeId,
		Instrument:  &instrumentId,
		Datetime:    &datetime,
		Observation: &observation,
	}

	if v := cell(5); v != "" {
		prop1, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("prop1 must be an integer")
		}
		dto.Prop1 = &prop1
	}
	if v := cell(6); v != "" {
		dto.Prop1Value = &v
	}

	return dto, nil
}
