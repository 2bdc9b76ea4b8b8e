package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse saída do login: usuário (sem senha) mais o token assinado.
type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// MeResponse identidade do chamador estabelecida pelo middleware.
type MeResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}
