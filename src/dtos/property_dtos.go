package dtos

type CreatePropertyDTO struct {
	Id        *int    `json:"id"`
	Name      *string `json:"name"`
	ValueType *string `json:"valueType"`
}

type UpdatePropertyDTO struct {
	Name      *string `json:"name"`
	ValueType *string `json:"valueType"`
}
