package models

type InstrumentModel struct {
	Id       int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string  `json:"name" gorm:"column:name;type:varchar(255);not null"`
	Aperture *string `json:"aperture" gorm:"column:aperture;type:varchar(255)"`
	Power    *string `json:"power" gorm:"column:power;type:varchar(255)"`
}
