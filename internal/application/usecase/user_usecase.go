package usecase

import (
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase casos de uso CRUD para usuarios (registro y login viven en auth).
type UserUseCase struct {
	repo       repository.UserRepository
	bcryptCost int
}

// NewUserUseCase construye el caso de uso. bcryptCost <= 0 usa el costo por defecto (10).
func NewUserUseCase(repo repository.UserRepository, bcryptCost int) *UserUseCase {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserUseCase{repo: repo, bcryptCost: bcryptCost}
}

// List devuelve todos los usuarios.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// Update sobreescribe username, email y password. El password se re-hashea
// siempre, aunque el valor no haya cambiado: no hay semántica parcial.
// Devuelve (nil, nil) si el ID no existe.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.bcryptCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:       id,
		Username: in.Username,
		Email:    in.Email,
		Password: string(hash),
	}
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	stored, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		stored = user
	}
	return toUserResponse(stored), nil
}

// Delete elimina un usuario por ID. Devuelve ErrUserNotFound si no existía.
func (uc *UserUseCase) Delete(id string) error {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Password: u.Password,
	}
}
