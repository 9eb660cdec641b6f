package utils

import (
	"errors"
	"time"

	"bookadoc-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// TokenClaims is the full payload a bearer token carries. The token is opaque
// to the client; nothing beyond the patient id and email goes in.
type TokenClaims struct {
	ID    string
	Email string
}

func HashPassword(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", exceptions.ErrHashPassword(err)
	}
	return string(bytes), nil
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateAuthJWT issues the signed bearer token for an authenticated
// patient. Expiry is fixed at issue time from the configured hour count.
func GenerateAuthJWT(patientID, email, secret string, expTimeInHour int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    patientID,
		"email": email,
		"exp":   time.Now().Add(time.Duration(expTimeInHour) * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}
	return tokenString, nil
}

// ParseAuthJWT validates signature and expiry and returns the embedded
// identity. Expired and otherwise-invalid tokens are classified separately;
// both map to 401 upstream.
func ParseAuthJWT(tokenString, secret string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, exceptions.ErrAuthInternal(nil)
		}
		return []byte(secret), nil
	})
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) {
			return nil, customErr
		}
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, exceptions.ErrTokenExpired(err)
		}
		return nil, exceptions.ErrTokenInvalid(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, exceptions.ErrTokenInvalid(nil)
	}

	id, _ := claims["id"].(string)
	email, _ := claims["email"].(string)
	if id == "" {
		return nil, exceptions.ErrTokenInvalid(nil)
	}

	return &TokenClaims{ID: id, Email: email}, nil
}
