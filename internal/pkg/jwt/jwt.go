package jwt

import (
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	ClaimSubject    = "sub"
	ClaimEmployeeID = "employee_id"
	ClaimIsAdmin    = "is_admin"
	ClaimType       = "type"

	TokenTypeAccess = "access"
)

type Service interface {
	GenerateAccessToken(employeeID string, isAdmin bool) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpirationTime time.Duration
	tokenAuth                 *jwtauth.JWTAuth
	now                       func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// NewJWTService builds an HS256 token service. accessTokenExpirationTime is
// a time.ParseDuration string such as "24h".
func NewJWTService(secretKey string, accessTokenExpirationTime string) (Service, error) {
	expiration, err := time.ParseDuration(accessTokenExpirationTime)
	if err != nil {
		return nil, fmt.Errorf("invalid access token expiration %q: %w", accessTokenExpirationTime, err)
	}
	return &JWTService{
		accessTokenExpirationTime: expiration,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:                       time.Now,
	}, nil
}

func (j *JWTService) GenerateAccessToken(employeeID string, isAdmin bool) (token string, expiresAt int64, err error) {
	expiresAt = j.now().Add(j.accessTokenExpirationTime).Unix()

	claims := map[string]interface{}{
		ClaimSubject:    employeeID,
		ClaimEmployeeID: employeeID,
		ClaimIsAdmin:    isAdmin,
		ClaimType:       TokenTypeAccess,
		"exp":           expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}
