package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service verifies portal access tokens. Token issuance belongs to the
// portal's auth backend; this service only needs the shared secret to accept
// or reject incoming requests, plus a generator used by tooling and tests.
type Service interface {
	GenerateAccessToken(employeeID string, expiresIn time.Duration) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey string
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		secretKey: secretKey,
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(employeeID string, expiresIn time.Duration) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(expiresIn).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"type":        "access",
		"exp":         expiresAt,
	})
	return tokenString, expiresAt, err
}
