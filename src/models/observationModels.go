package models

import "time"

// ObservationModel is the fact entity: it references an object, the place it
// was observed from and the instrument used, plus an optional measured
// property (Prop1/Prop1Value).
type ObservationModel struct {
	Id          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Object      int       `json:"object" gorm:"column:object;not null"`
	Place       int       `json:"place" gorm:"column:place;not null"`
	Instrument  int       `json:"instrument" gorm:"column:instrument;not null"`
	Datetime    time.Time `json:"datetime" gorm:"column:datetime;not null"`
	Observation string    `json:"observation" gorm:"column:observation;type:varchar(255);not null"`
	Prop1       *int      `json:"prop1" gorm:"column:prop1"`
	Prop1Value  *string   `json:"prop1value" gorm:"column:prop1value;type:varchar(255)"`

	ObservedObject        ObjectModel     `json:"-" gorm:"foreignKey:Object;references:Id"`
	ObservationPlace      PlaceModel      `json:"-" gorm:"foreignKey:Place;references:Id"`
	ObservationInstrument InstrumentModel `json:"-" gorm:"foreignKey:Instrument;references:Id"`
}
