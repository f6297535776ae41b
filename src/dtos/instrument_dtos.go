package dtos

type CreateInstrumentDTO struct {
	Id       *int    `json:"id"`
	Name     *string `json:"name"`
	Aperture *string `json:"aperture"`
	Power    *string `json:"power"`
}

type UpdateInstrumentDTO struct {
	Name     *string `json:"name"`
	Aperture *string `json:"aperture"`
	Power    *string `json:"power"`
}
