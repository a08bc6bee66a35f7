package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/agrilconnect-api/internal/application/auth"
	"github.com/jhoicas/agrilconnect-api/internal/application/dto"
	"github.com/jhoicas/agrilconnect-api/pkg/logger"
)

// LoginLimiter freno de intentos de login (lo implementa redis.LoginThrottle).
type LoginLimiter interface {
	Allow(ctx context.Context, ip, identifier string) (bool, error)
	RecordFailure(ctx context.Context, identifier string) error
	Reset(ctx context.Context, identifier string) error
}

// AuthHandler maneja registro, login y la identidad de la sesión.
type AuthHandler struct {
	uc      *auth.AuthUseCase
	limiter LoginLimiter // nil: sin freno
	log     *logger.Logger
}

// NewAuthHandler construye el handler de auth. limiter puede ser nil.
func NewAuthHandler(uc *auth.AuthUseCase, limiter LoginLimiter, log *logger.Logger) *AuthHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthHandler{uc: uc, limiter: limiter, log: log.Component("auth_http")}
}

// SignUp godoc
// @Summary      Registrar negocio
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignUpRequest  true  "Cuenta y perfil de negocio"
// @Success      201   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var in dto.SignUpRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.SignUp(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión con nombre del negocio o email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "business_name | email, password"
// @Success      200   {object}  dto.AuthResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	ctx := c.UserContext()
	id := in.Identifier()

	if h.limiter != nil {
		ok, err := h.limiter.Allow(ctx, c.IP(), id)
		if err != nil {
			// Redis caído: se registra y se deja pasar.
			h.log.Warn().Err(err).Msg("freno de login no disponible")
		} else if !ok {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "TOO_MANY_ATTEMPTS",
				Message: "demasiados intentos, intente más tarde",
			})
		}
	}

	out, err := h.uc.Login(ctx, in)
	if err != nil {
		if auth.IsCredentialError(err) && h.limiter != nil {
			if ferr := h.limiter.RecordFailure(ctx, id); ferr != nil {
				h.log.Warn().Err(ferr).Msg("registrar intento fallido")
			}
		}
		return writeError(c, err)
	}
	if h.limiter != nil {
		if rerr := h.limiter.Reset(ctx, id); rerr != nil {
			h.log.Warn().Err(rerr).Msg("limpiar intentos fallidos")
		}
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Identidad, rol vigente y permisos de la sesión
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.UserContext(), GetSession(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
