package auth

import (
	"github.com/google/uuid"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	bcryptCost int
}

// NewAuthUseCase construye el caso de uso de auth. bcryptCost <= 0 usa el costo por defecto (10).
func NewAuthUseCase(userRepo repository.UserRepository, bcryptCost int) *AuthUseCase {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthUseCase{userRepo: userRepo, bcryptCost: bcryptCost}
}

// Register crea un usuario: pre-chequea unicidad de email, hashea el password con
// bcrypt y persiste con un ID generado. Devuelve la fila persistida, así el texto
// plano nunca sale del proceso.
//
// El pre-chequeo y el insert no son atómicos: dos registros concurrentes con el
// mismo email pueden colarse (hueco de consistencia heredado, ver DESIGN.md).
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.bcryptCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:       uuid.New().String(),
		Username: in.Username,
		Email:    in.Email,
		Password: string(hash),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	stored, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		stored = user
	}
	return toUserResponse(stored), nil
}

// Login verifica email/password y devuelve el registro del usuario.
// La comparación es bcrypt (tiempo constante), nunca igualdad directa de bytes.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return toUserResponse(user), nil
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
