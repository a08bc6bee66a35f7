package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/agrilconnect-api/internal/application/dto"
	"github.com/jhoicas/agrilconnect-api/internal/application/session"
	"github.com/jhoicas/agrilconnect-api/internal/domain/rbac"
	"github.com/jhoicas/agrilconnect-api/pkg/jwt"
)

// LocalSession key de la sesión resuelta en c.Locals.
const LocalSession = "session"

// SessionResolver reconstruye la sesión a partir de los claims (lo implementa auth.AuthUseCase).
type SessionResolver interface {
	Resolve(ctx context.Context, userID, email string) (session.Session, error)
}

// SessionMiddleware valida el Bearer Token y carga la sesión con el rol vigente del perfil.
func SessionMiddleware(jwtSecret string, resolver SessionResolver) fiber.Handler {
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
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		s, err := resolver.Resolve(c.UserContext(), claims.UserID, claims.Email)
		if err != nil {
			return writeError(c, err)
		}
		c.Locals(LocalSession, s)
		return c.Next()
	}
}

// RequireConsole puerta de la consola administrativa: sólo admin, manager y staff.
// Debe usarse DESPUÉS de SessionMiddleware.
func RequireConsole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !GetSession(c).Permissions().CanEnterConsole() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "la consola administrativa requiere rol admin, manager o staff",
			})
		}
		return c.Next()
	}
}

// RequirePermission bloquea la ruta si el rol de la sesión no tiene (action, resource).
// Los casos de uso vuelven a verificar el permiso antes de tocar la base de datos.
func RequirePermission(action rbac.Action, resource rbac.Resource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !GetSession(c).Permissions().CanPerformAction(action, resource) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "rol sin permiso " + string(action) + " sobre " + string(resource),
			})
		}
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto; vacía (rol user) si no hay.
func GetSession(c *fiber.Ctx) session.Session {
	s, _ := c.Locals(LocalSession).(session.Session)
	return s
}
