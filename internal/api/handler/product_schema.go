package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createProductRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
	Imagen      string   `json:"imagen"`
}

// updateProductRequest is a partial payload: only fields present in the JSON
// body are applied. Pointers distinguish "absent" from zero values.
type updateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"       validate:"omitempty,gte=0"`
	Imagen      *string  `json:"imagen"`
}

type deleteProductResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}
