package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto. Price y Quantity son punteros
// para distinguir "campo ausente" de cero: 0 es un valor válido en ambos.
type CreateProductRequest struct {
	Name     string           `json:"name"`
	Price    *decimal.Decimal `json:"price"`
	Quantity *int             `json:"quantity"`
	Image    string           `json:"image"`
}

// UpdateProductRequest entrada para actualizar un producto: se sobreescriben
// todos los campos, misma semántica de presencia que la creación.
type UpdateProductRequest struct {
	Name     string           `json:"name"`
	Price    *decimal.Decimal `json:"price"`
	Quantity *int             `json:"quantity"`
	Image    string           `json:"image"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Image    string          `json:"image"`
}

// ProductListResponse colección de productos con su total.
type ProductListResponse struct {
	TotalProducts int               `json:"totalProducts"`
	Products      []ProductResponse `json:"products"`
}

// ProductMessageResponse crear y actualizar devuelven mensaje + producto persistido.
type ProductMessageResponse struct {
	Message string          `json:"message"`
	Product ProductResponse `json:"product"`
}
