package models

type PropertyModel struct {
	Id        int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string `json:"name" gorm:"column:name;type:varchar(255);not null"`
	ValueType string `json:"valueType" gorm:"column:value_type;type:varchar(255);not null"`
}
