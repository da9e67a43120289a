package postgres_test

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/infrastructure/postgres"
)

func productRows(p *entity.Product) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "name", "price", "quantity", "image"}).
		AddRow(p.ID, p.Name, p.Price, p.Quantity, p.Image)
}

func TestProductRepo_Create_ReleeLaFilaPersistida(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	in := &entity.Product{
		ID:       "p-1",
		Name:     "teclado",
		Price:    decimal.RequireFromString("49.90"),
		Quantity: 12,
		Image:    "https://img/teclado.png",
	}

	mock.ExpectExec("INSERT INTO products").
		WithArgs(in.ID, in.Name, in.Price, in.Quantity, in.Image).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("SELECT id, name, price, quantity, image FROM products WHERE id").
		WithArgs(in.ID).
		WillReturnRows(productRows(in))

	repo := postgres.NewProductRepository(mock)
	created, err := repo.Create(in)

	require.NoError(t, err)
	require.NotNil(t, created)
	// La fila releída refleja exactamente lo enviado.
	assert.Equal(t, in.ID, created.ID)
	assert.Equal(t, in.Name, created.Name)
	assert.True(t, in.Price.Equal(created.Price))
	assert.Equal(t, in.Quantity, created.Quantity)
	assert.Equal(t, in.Image, created.Image)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_Create_ValoresCeroSonValidos(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	in := &entity.Product{ID: "p-0", Name: "n", Price: decimal.Zero, Quantity: 0, Image: "i"}

	mock.ExpectExec("INSERT INTO products").
		WithArgs(in.ID, in.Name, in.Price, in.Quantity, in.Image).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("SELECT id, name, price, quantity, image FROM products WHERE id").
		WithArgs(in.ID).
		WillReturnRows(productRows(in))

	repo := postgres.NewProductRepository(mock)
	created, err := repo.Create(in)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, created.Price.IsZero())
	assert.Zero(t, created.Quantity)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_GetByID_NoExiste(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, name, price, quantity, image FROM products WHERE id").
		WithArgs("p-404").
		WillReturnError(pgx.ErrNoRows)

	repo := postgres.NewProductRepository(mock)
	product, err := repo.GetByID("p-404")

	require.NoError(t, err)
	assert.Nil(t, product)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_Update_ReleeLaFilaPersistida(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	in := &entity.Product{
		ID:       "p-1",
		Name:     "teclado mecánico",
		Price:    decimal.RequireFromString("59.90"),
		Quantity: 8,
		Image:    "https://img/teclado-v2.png",
	}

	mock.ExpectExec("UPDATE products SET name").
		WithArgs(in.ID, in.Name, in.Price, in.Quantity, in.Image).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery("SELECT id, name, price, quantity, image FROM products WHERE id").
		WithArgs(in.ID).
		WillReturnRows(productRows(in))

	repo := postgres.NewProductRepository(mock)
	updated, err := repo.Update(in)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "teclado mecánico", updated.Name)
	assert.Equal(t, 8, updated.Quantity)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_Delete_IdempotenteSiNoExiste(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM products").
		WithArgs("p-404").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := postgres.NewProductRepository(mock)
	err = repo.Delete("p-404")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"id", "name", "price", "quantity", "image"}).
		AddRow("p-1", "teclado", decimal.RequireFromString("49.90"), 12, "i1").
		AddRow("p-2", "mouse", decimal.RequireFromString("19.90"), 30, "i2")
	mock.ExpectQuery("SELECT id, name, price, quantity, image FROM products").
		WillReturnRows(rows)

	repo := postgres.NewProductRepository(mock)
	list, err := repo.List()

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "teclado", list[0].Name)
	assert.Equal(t, 30, list[1].Quantity)
	require.NoError(t, mock.ExpectationsWereMet())
}
