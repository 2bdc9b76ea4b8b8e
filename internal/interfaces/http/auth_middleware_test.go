package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/age26/age26-backend/internal/interfaces/http"
	"github.com/age26/age26-backend/pkg/config"
	pkgjwt "github.com/age26/age26-backend/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "age26-backend-test"
)

// buildApp monta uma aplicação Fiber mínima com o AuthMiddleware e um
// handler que devolve a identidade carregada em locals.
func buildApp(cfg config.AuthConfig) *fiber.App {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(cfg, testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"id":    apphttp.GetUserID(c),
			"email": apphttp.GetUserEmail(c),
		})
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeIdentity(t *testing.T, resp *http.Response) (int64, string) {
	t.Helper()
	var body struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.ID, body.Email
}

// Bypass de desenvolvimento: sem credencial nenhuma a identidade fixa é carimbada.
func TestAuthMiddleware_BypassCarimbaIdentidadeFixa(t *testing.T) {
	app := buildApp(config.AuthConfig{
		DevBypass:    true,
		DevUserID:    1,
		DevUserEmail: "admin@age26.com",
	})
	resp := doRequest(t, app, "") // sem header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"com bypass ligado a requisição passa sem credencial")

	id, email := decodeIdentity(t, resp)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, "admin@age26.com", email)
}

// Bypass ligado ignora inclusive tokens inválidos.
func TestAuthMiddleware_BypassIgnoraTokenInvalido(t *testing.T) {
	app := buildApp(config.AuthConfig{
		DevBypass:    true,
		DevUserID:    1,
		DevUserEmail: "admin@age26.com",
	})
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_SemHeaderRetorna401(t *testing.T) {
	app := buildApp(config.AuthConfig{})
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalidoRetorna401(t *testing.T) {
	app := buildApp(config.AuthConfig{})
	resp := doRequest(t, app, "Token abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalidoRetorna401(t *testing.T) {
	app := buildApp(config.AuthConfig{})
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenValidoExtraiClaims(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, 42, "ana@x.com", testIssuer, 7)
	require.NoError(t, err)

	app := buildApp(config.AuthConfig{})
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	id, email := decodeIdentity(t, resp)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, "ana@x.com", email)
}
