package jwt

import "github.com/golang-jwt/jwt/v5"

// AdminClaims описывает данные административного токена.
// Email — идентификатор администратора; срок жизни задаётся стандартным
// полем ExpiresAt и проверяется при парсинге.
type AdminClaims struct {
	Email                string `json:"email"`
	jwt.RegisteredClaims        // Встроенные стандартные claims JWT (ExpiresAt, IssuedAt и пр.)
}
