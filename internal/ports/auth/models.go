package auth

import "time"

// Claims representa la información extraída del token de sesión.
type Claims struct {
	Login     string
	TokenID   string
	ExpiresAt time.Time
}

// Token es lo que se entrega al cliente después de un login exitoso.
type Token struct {
	Value     string
	ExpiresAt time.Time
}
