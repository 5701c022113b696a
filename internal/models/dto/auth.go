package dto

// LoginForm carries the urlencoded fields "whatsapp" and "password" of POST /login.
type LoginForm struct {
	WhatsApp string `validate:"required"`
	Password string `validate:"required"`
}
