package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/age26/age26-backend/pkg/jwt"
)

const testSecret = "segredo-de-teste"

func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := jwt.Generate(testSecret, 42, "ana@x.com", "age26-backend", 7)
	require.NoError(t, err)

	userID, email, err := jwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "ana@x.com", email)
}

func TestParse_SecretErrado(t *testing.T) {
	tok, err := jwt.Generate(testSecret, 1, "a@x.com", "age26-backend", 7)
	require.NoError(t, err)

	_, _, err = jwt.Parse("outro-secret", tok)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	// Validade negativa gera um token já expirado.
	tok, err := jwt.Generate(testSecret, 1, "a@x.com", "age26-backend", -1)
	require.NoError(t, err)

	_, _, err = jwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVazio(t *testing.T) {
	_, err := jwt.Generate("", 1, "a@x.com", "age26-backend", 7)
	assert.Error(t, err)
}
