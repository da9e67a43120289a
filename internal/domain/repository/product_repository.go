package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Create y Update releen la fila persistida para reflejar defaults/coerciones del store.
type ProductRepository interface {
	List() ([]*entity.Product, error)
	GetByID(id string) (*entity.Product, error)
	Create(product *entity.Product) (*entity.Product, error)
	Update(product *entity.Product) (*entity.Product, error)
	Delete(id string) error
}
