package entity

// User representa un usuario del sistema.
// Password guarda siempre el hash bcrypt; el texto plano nunca se persiste ni se loguea.
type User struct {
	ID       string
	Username string
	Email    string
	Password string
}
