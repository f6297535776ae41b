package dtos

type CreateObjectDTO struct {
	Id          *int    `json:"id"`
	Name        *string `json:"name"`
	Designation *string `json:"designation"`
	Type        *int    `json:"type"`
	Props       *string `json:"props"`
}

type UpdateObjectDTO struct {
	Name        *string `json:"name"`
	Designation *string `json:"designation"`
	Type        *int    `json:"type"`
	Props       *string `json:"props"`
}
