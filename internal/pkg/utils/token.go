package utils

import (
	"fmt"

	"github.com/golang-jwt/jwt"
	"github.com/kgrigsby/event-weather/internal/pkg/constants"
	"github.com/spf13/viper"
)

// AuthTokenWrapper is the claim set carried by the auth cookie issued by
// the external credential store.
type AuthTokenWrapper struct {
	UserID string `json:"user_id"`
	jwt.StandardClaims
}

func (w *AuthTokenWrapper) Valid() error {
	if w.UserID == "" {
		return constants.ErrUnauthorized
	}
	return w.StandardClaims.Valid()
}

// ParseAuthToken verifies the token signature against the configured
// secret and returns the embedded claims.
func ParseAuthToken(tokenString string) (*AuthTokenWrapper, error) {
	wrapper := &AuthTokenWrapper{}
	_, err := jwt.ParseWithClaims(tokenString, wrapper, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(viper.GetString(constants.ViperAuthSecret)), nil
	})
	if err != nil {
		return nil, constants.ErrUnauthorized
	}

	return wrapper, nil
}

// GenerateAuthToken signs claims with the configured secret. Used by
// tests and local tooling; token issuance itself lives with the external
// credential store.
func GenerateAuthToken(wrapper *AuthTokenWrapper) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, wrapper)
	return token.SignedString([]byte(viper.GetString(constants.ViperAuthSecret)))
}
