package usecase

import (
	"github.com/google/uuid"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List devuelve todos los productos.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Create genera un ID aleatorio (la probabilidad de colisión es despreciable,
// no se re-verifica), inserta y devuelve la fila releída. Un re-read vacío
// se devuelve como (nil, nil): el handler lo trata como fallo de creación.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := &entity.Product{
		ID:       uuid.New().String(),
		Name:     in.Name,
		Price:    *in.Price,
		Quantity: *in.Quantity,
		Image:    in.Image,
	}
	created, err := uc.repo.Create(product)
	if err != nil {
		return nil, err
	}
	return toProductResponse(created), nil
}

// Update sobreescribe todos los campos y devuelve la fila releída.
// Devuelve (nil, nil) si el ID no existe.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	product := &entity.Product{
		ID:       id,
		Name:     in.Name,
		Price:    *in.Price,
		Quantity: *in.Quantity,
		Image:    in.Image,
	}
	updated, err := uc.repo.Update(product)
	if err != nil {
		return nil, err
	}
	return toProductResponse(updated), nil
}

// Delete elimina un producto por ID. Devuelve ErrProductNotFound si no existía.
func (uc *ProductUseCase) Delete(id string) error {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrProductNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: p.Quantity,
		Image:    p.Image,
	}
}
