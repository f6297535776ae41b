package dtos

// CreateTypeDTO is the POST /api/types payload. Id is optional: clients may
// bring their own identifiers for catalog entities.
type CreateTypeDTO struct {
	Id   *int    `json:"id"`
	Name *string `json:"name"`
}

// UpdateTypeDTO is the PUT /api/types/:id payload; only fields present in
// the body are applied.
type UpdateTypeDTO struct {
	Name *string `json:"name"`
}
