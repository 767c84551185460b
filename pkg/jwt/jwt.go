package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySecret se devuelve si no hay secreto configurado.
var ErrEmptySecret = errors.New("jwt: secret vacío")

// Claims son los claims estándar; Subject lleva el username del admin.
type Claims struct {
	jwt.RegisteredClaims
}

// Generate genera un token firmado con el algoritmo HMAC indicado (HS256, HS384, HS512)
// que expira expMinutes minutos después de now.
func Generate(secret, algorithm, subject, issuer string, expMinutes int, now time.Time) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	method, err := hmacMethod(algorithm)
	if err != nil {
		return "", err
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
	}
	return jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
}

// Parse valida firma, algoritmo y expiración (evaluada contra now) y devuelve el subject.
// Retorna error si el token es inválido, expirado, tiene firma incorrecta o no trae subject.
func Parse(secret, algorithm, tokenString string, now time.Time) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	if _, err := hmacMethod(algorithm); err != nil {
		return "", err
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{algorithm}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("claims inválidos")
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("token sin subject")
	}
	return claims.Subject, nil
}

func hmacMethod(algorithm string) (*jwt.SigningMethodHMAC, error) {
	m, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("jwt: algoritmo %q no soportado", algorithm)
	}
	return m, nil
}
