package services

import (
	"errors"

	"gorm.io/gorm"
)

// Store is the shared CRUD skeleton the per-entity services build on. Each
// service keeps its own validation rules (required fields, foreign keys,
// dependent checks) and delegates the plain row access here.
type Store[M any] struct {
	db   *gorm.DB
	name string
}

// All retrieves every row in storage order.
func (s *Store[M]) All() ([]M, error) {
	rows := []M{}
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ByID retrieves a single row by primary key.
func (s *Store[M]) ByID(id int) (*M, error) {
	var row M
	err := s.db.First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Message: s.name + " not found"}
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert persists a new row; server-generated ids are filled in on return.
func (s *Store[M]) Insert(row *M) error {
	return s.db.Create(row).Error
}

func (s *Store[M]) notFound() error {
	return &NotFoundError{Message: s.name + " not found"}
}

// exists reports whether a row of model M with the given id is present,
// using the supplied handle so callers can run it inside a transaction.
func exists[M any](tx *gorm.DB, id int) (bool, error) {
	var row M
	var count int64
	if err := tx.Model(&row).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
