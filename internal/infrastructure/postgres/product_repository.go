package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o mock (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// List devuelve todos los productos.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name, price, quantity, image FROM products`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Quantity, &p.Image); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT id, name, price, quantity, image FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(&p.ID, &p.Name, &p.Price, &p.Quantity, &p.Image)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Create inserta un producto y relee la fila persistida, de modo que cualquier
// default o coerción del store quede reflejado en lo que se devuelve.
func (r *ProductRepo) Create(product *entity.Product) (*entity.Product, error) {
	query := `INSERT INTO products (id, name, price, quantity, image) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Price, product.Quantity, product.Image,
	)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return r.GetByID(product.ID)
}

// Update sobreescribe todos los campos y relee la fila persistida.
func (r *ProductRepo) Update(product *entity.Product) (*entity.Product, error) {
	query := `UPDATE products SET name = $2, price = $3, quantity = $4, image = $5 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Price, product.Quantity, product.Image,
	)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return r.GetByID(product.ID)
}

// Delete elimina un producto por ID; silencioso si no existe.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
