package dto

// LoginRequest body de POST /api/auth/login. El frontend envía el login
// en el campo email (compatibilidad con el cliente existente).
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse datos públicos del usuario.
type UserResponse struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Name  string `json:"nombre"`
	Email string `json:"email"`
	Role  string `json:"rol"`
}

// LoginResponse token + usuario.
type LoginResponse struct {
	Token string       `json:"accessToken"`
	User  UserResponse `json:"user"`
}
