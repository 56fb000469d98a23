package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/orderdeck/go-order-dashboard/internal/app/entity"
)

const tokenLifetime = 12 * time.Hour

var (
	ErrTokenNotValid = errors.New("token is not valid")
	ErrTokenExpired  = errors.New("token is expired")
)

// InstanceClaims is the payload of the signed token the platform hands to
// the embedded dashboard on load.
type InstanceClaims struct {
	jwt.RegisteredClaims
	InstanceID string `json:"instanceId"`
}

// GetInstanceID verifies a signed app instance token and extracts the
// instance identifier.
func GetInstanceID(tokenString, secret string) (entity.InstanceID, error) {
	claims := &InstanceClaims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entity.InstanceID(""), ErrTokenExpired
		}

		return entity.InstanceID(""), fmt.Errorf("error while parsing instance token: %w", err)
	}

	if !parsed.Valid {
		return entity.InstanceID(""), ErrTokenNotValid
	}

	return entity.InstanceID(claims.InstanceID), nil
}

// BuildInstanceToken signs an instance token. Used by tests and local tooling.
func BuildInstanceToken(instanceID entity.InstanceID, secret string) (string, error) {
	claims := InstanceClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
		},
		InstanceID: instanceID.String(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("error while creating instance token: %w", err)
	}

	return signed, nil
}
