package scope

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims identifies the acting user. Subject holds the decimal user id.
type Claims struct {
	jwt.RegisteredClaims
}
