package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/pkg/jwt"
)

// Locals keys para UserID y UserType en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUserType = "user_type"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID y UserType a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, userType, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalUserType, userType)
		return c.Next()
	}
}

// OptionalAuthMiddleware extrae UserID y UserType si el request trae un token
// válido, y deja pasar igual si no lo trae. Para rutas públicas cuya respuesta
// cambia según quién pregunta (ej: el detalle de un aviso en borrador).
func OptionalAuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenString := strings.TrimSpace(parts[1])
			if userID, userType, err := jwt.Parse(jwtSecret, tokenString); err == nil {
				c.Locals(LocalUserID, userID)
				c.Locals(LocalUserType, userType)
			}
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUserType devuelve el rol del contexto (después del middleware de auth).
func GetUserType(c *fiber.Ctx) string {
	v := c.Locals(LocalUserType)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// RequireRole devuelve un middleware Fiber que verifica el rol del token.
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalUserType).
//
// Comportamiento:
//   - 401 Unauthorized → el token no trae rol (usuario sin onboarding).
//   - 403 Forbidden    → el rol del token no está entre los permitidos.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userType := GetUserType(c)
		if userType == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "complete el onboarding antes de usar esta operación",
			})
		}
		for _, r := range roles {
			if userType == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "el rol '" + userType + "' no puede usar esta operación",
		})
	}
}
