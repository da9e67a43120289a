package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo.
// Price es NUMERIC en la base (nunca negativo); Quantity son unidades en stock.
type Product struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	Quantity int
	Image    string // URI o ruta de la imagen
}
