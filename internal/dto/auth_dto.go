package dto

// LoginRequest es el cuerpo de POST /api/v1/auth/login. La contraseña viaja
// cifrada con la clave publica RSA y codificada en base64, igual que en el
// formulario web.
type LoginRequest struct {
	Username          string `json:"username" validate:"required"`
	PasswordEncrypted string `json:"password_encrypted" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}
