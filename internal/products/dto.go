package products

// CreateRequest carries the fields required to create a product. Price and
// stock are pointers so a present zero is distinguishable from a missing key.
type CreateRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Price       *float64 `json:"price" validate:"required,gt=0"`
	Stock       *int     `json:"stock" validate:"required,gte=0"`
}

// UpdateRequest is a partial patch. A nil field means "leave unchanged" and
// is skipped by validation; a present field is validated and overwrites the
// stored value on merge.
type UpdateRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
}
