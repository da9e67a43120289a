package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// fakeProductRepo repositorio en memoria. failReadBack simula un store que no
// devuelve la fila tras el insert (eco de creación vacío).
type fakeProductRepo struct {
	products     map[string]*entity.Product
	failReadBack bool
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (f *fakeProductRepo) List() ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range f.products {
		copia := *p
		list = append(list, &copia)
	}
	return list, nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (f *fakeProductRepo) Create(product *entity.Product) (*entity.Product, error) {
	copia := *product
	f.products[product.ID] = &copia
	if f.failReadBack {
		return nil, nil
	}
	return f.GetByID(product.ID)
}

func (f *fakeProductRepo) Update(product *entity.Product) (*entity.Product, error) {
	if _, ok := f.products[product.ID]; ok {
		copia := *product
		f.products[product.ID] = &copia
	}
	return f.GetByID(product.ID)
}

func (f *fakeProductRepo) Delete(id string) error {
	delete(f.products, id)
	return nil
}

func ptrDecimal(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func ptrInt(n int) *int { return &n }

func TestProductUseCase_Create(t *testing.T) {
	t.Run("genera ID y devuelve la fila releída con los mismos campos", func(t *testing.T) {
		repo := newFakeProductRepo()
		uc := usecase.NewProductUseCase(repo)

		out, err := uc.Create(dto.CreateProductRequest{
			Name: "teclado", Price: ptrDecimal("49.90"), Quantity: ptrInt(12), Image: "img",
		})
		require.NoError(t, err)
		require.NotNil(t, out)
		assert.NotEmpty(t, out.ID)

		// El get inmediato devuelve exactamente lo enviado.
		got, err := uc.GetByID(out.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "teclado", got.Name)
		assert.True(t, got.Price.Equal(decimal.RequireFromString("49.90")))
		assert.Equal(t, 12, got.Quantity)
		assert.Equal(t, "img", got.Image)
	})

	t.Run("eco de creación vacío se devuelve como (nil, nil)", func(t *testing.T) {
		repo := newFakeProductRepo()
		repo.failReadBack = true
		uc := usecase.NewProductUseCase(repo)

		out, err := uc.Create(dto.CreateProductRequest{
			Name: "n", Price: ptrDecimal("0"), Quantity: ptrInt(0), Image: "i",
		})
		require.NoError(t, err)
		assert.Nil(t, out)
	})
}

func TestProductUseCase_Update(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(dto.CreateProductRequest{
		Name: "teclado", Price: ptrDecimal("49.90"), Quantity: ptrInt(12), Image: "img",
	})
	require.NoError(t, err)

	t.Run("round trip: get posterior devuelve los campos nuevos", func(t *testing.T) {
		out, err := uc.Update(created.ID, dto.UpdateProductRequest{
			Name: "teclado v2", Price: ptrDecimal("59.90"), Quantity: ptrInt(8), Image: "img2",
		})
		require.NoError(t, err)
		require.NotNil(t, out)

		got, err := uc.GetByID(created.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "teclado v2", got.Name)
		assert.True(t, got.Price.Equal(decimal.RequireFromString("59.90")))
		assert.Equal(t, 8, got.Quantity)
		assert.Equal(t, "img2", got.Image)
	})

	t.Run("ID inexistente devuelve (nil, nil)", func(t *testing.T) {
		out, err := uc.Update("p-404", dto.UpdateProductRequest{
			Name: "x", Price: ptrDecimal("1"), Quantity: ptrInt(1), Image: "i",
		})
		require.NoError(t, err)
		assert.Nil(t, out)
	})
}

func TestProductUseCase_Delete(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(dto.CreateProductRequest{
		Name: "n", Price: ptrDecimal("1"), Quantity: ptrInt(1), Image: "i",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrProductNotFound)
}
