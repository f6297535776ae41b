package models

// Lat, Lon and Alt are stored as text on purpose: the source data carries
// values like "19.8208" next to "4205m", so the schema keeps them verbatim.
type PlaceModel struct {
	Id       int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string  `json:"name" gorm:"column:name;type:varchar(255);not null"`
	Lat      string  `json:"lat" gorm:"column:lat;type:varchar(255);not null"`
	Lon      string  `json:"lon" gorm:"column:lon;type:varchar(255);not null"`
	Alt      *string `json:"alt" gorm:"column:alt;type:varchar(255)"`
	Timezone *string `json:"timezone" gorm:"column:timezone;type:varchar(255)"`
}
