package models

// Props holds opaque serialized key-value data (usually JSON) describing the
// celestial object; the API never interprets it.
type ObjectModel struct {
	Id          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"column:name;type:varchar(255);not null"`
	Designation *string   `json:"designation" gorm:"column:designation;type:varchar(255)"`
	Type        int       `json:"type" gorm:"column:type;not null"`
	ObjectType  TypeModel `json:"-" gorm:"foreignKey:Type;references:Id"`
	Props       *string   `json:"props" gorm:"column:props;type:text"`
}
