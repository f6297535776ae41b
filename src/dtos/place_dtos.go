package dtos

// Place ids are always server-generated, so the create payload carries none.
type CreatePlaceDTO struct {
	Name     *string `json:"name"`
	Lat      *string `json:"lat"`
	Lon      *string `json:"lon"`
	Alt      *string `json:"alt"`
	Timezone *string `json:"timezone"`
}

type UpdatePlaceDTO struct {
	Name     *string `json:"name"`
	Lat      *string `json:"lat"`
	Lon      *string `json:"lon"`
	Alt      *string `json:"alt"`
	Timezone *string `json:"timezone"`
}
