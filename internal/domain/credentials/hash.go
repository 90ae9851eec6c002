package credentials

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword devuelve el SHA-256 en hex minúscula. Sin salt ni iteraciones:
// las filas existentes se guardaron así y tienen que seguir validando.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
