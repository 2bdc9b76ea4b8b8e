package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/age26/age26-backend/internal/application/dto"
	"github.com/age26/age26-backend/pkg/config"
	"github.com/age26/age26-backend/pkg/jwt"
)

// Locals keys para a identidade do chamador no Fiber.
const (
	LocalUserID    = "user_id"
	LocalUserEmail = "user_email"
)

// AuthMiddleware estabelece a identidade do chamador.
// Com cfg.DevBypass ligado carimba a identidade fixa de desenvolvimento sem
// olhar credencial nenhuma (comportamento do build original); desligado,
// valida o Bearer Token JWT e extrai user id e email para c.Locals.
func AuthMiddleware(cfg config.AuthConfig, jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.DevBypass {
			c.Locals(LocalUserID, cfg.DevUserID)
			c.Locals(LocalUserEmail, cfg.DevUserEmail)
			return c.Next()
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		userID, email, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalUserEmail, email)
		return c.Next()
	}
}

// GetUserID devolve o id do chamador do contexto (após o middleware de auth).
func GetUserID(c *fiber.Ctx) int64 {
	v := c.Locals(LocalUserID)
	if v == nil {
		return 0
	}
	id, _ := v.(int64)
	return id
}

// GetUserEmail devolve o email do chamador do contexto (após o middleware de auth).
func GetUserEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalUserEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
