package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cardinal-capital/club-system/internal/core/domain"
	"github.com/cardinal-capital/club-system/internal/core/ports"
)

var errNoSession = errors.New("no session")

// JWTResolver resolves sessions from a bearer token signed with HS256.
type JWTResolver struct {
	secret string
}

func NewJWTResolver(secret string) *JWTResolver {
	return &JWTResolver{secret: secret}
}

// Resolve validates the Authorization header and returns the session carried
// by the token's user_id and role claims.
func (j *JWTResolver) Resolve(r *http.Request) (*ports.Session, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, errNoSession
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, errNoSession
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(j.secret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, errNoSession
	}

	userID, _ := claims["user_id"].(string)
	roleStr, _ := claims["role"].(string)
	role := domain.Role(roleStr)
	if userID == "" || !role.Valid() {
		return nil, errNoSession
	}

	return &ports.Session{UserID: userID, Role: role}, nil
}
