package jwt_test

import (
	"errors"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/sns-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "sns-api-test"
)

var issuedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestGenerateAndParse_DevuelveSubject(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "HS256", "admin", testIssuer, 30, issuedAt)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	sub, err := pkgjwt.Parse(testSecret, "HS256", tok, issuedAt.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "admin", sub)
}

func TestParse_VentanaDeExpiracion(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "HS256", "admin", testIssuer, 30, issuedAt)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, "HS256", tok, issuedAt.Add(29*time.Minute))
	assert.NoError(t, err, "a los 29 minutos el token sigue vigente")

	_, err = pkgjwt.Parse(testSecret, "HS256", tok, issuedAt.Add(31*time.Minute))
	require.Error(t, err, "a los 31 minutos el token expiró")
	assert.True(t, errors.Is(err, gojwt.ErrTokenExpired))
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "HS256", "admin", testIssuer, 30, issuedAt)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", "HS256", tok, issuedAt)
	assert.Error(t, err)
}

func TestParse_AlgoritmoDistintoAlConfigurado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "HS512", "admin", testIssuer, 30, issuedAt)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, "HS256", tok, issuedAt)
	assert.Error(t, err, "solo se acepta el algoritmo configurado")
}

func TestParse_TokenMalFormado(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "HS256", "token.invalido.aqui", issuedAt)
	assert.Error(t, err)
}

func TestGenerate_ValidaEntradas(t *testing.T) {
	_, err := pkgjwt.Generate("", "HS256", "admin", testIssuer, 30, issuedAt)
	assert.ErrorIs(t, err, pkgjwt.ErrEmptySecret)

	_, err = pkgjwt.Generate(testSecret, "RS256", "admin", testIssuer, 30, issuedAt)
	assert.Error(t, err)
}
