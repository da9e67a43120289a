package dto

// RegisterRequest entrada para registro (password en texto, se hashea en el use case).
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest entrada para actualizar un usuario. Todos los campos son
// obligatorios: no hay actualización parcial y el password se re-hashea siempre.
type UpdateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse salida de un usuario tal como está persistido.
// Password es el hash bcrypt: el contrato original lo expone en register/login/update
// y se preserva de forma deliberada (debilidad conocida, documentada en DESIGN.md).
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserListResponse colección de usuarios con su total.
type UserListResponse struct {
	TotalUsers int            `json:"totalUsers"`
	Users      []UserResponse `json:"users"`
}

// RegisterResponse envoltura del usuario recién creado.
type RegisterResponse struct {
	NewUser UserResponse `json:"newUser"`
}

// LoginResponse envoltura del usuario autenticado.
type LoginResponse struct {
	User UserResponse `json:"user"`
}

// UpdateUserResponse envoltura del usuario actualizado.
type UpdateUserResponse struct {
	UpdatedUser UserResponse `json:"updatedUser"`
}
