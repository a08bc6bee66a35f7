package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/agrilconnect-api/internal/application/console"
)

// ConsoleHandler navegación de la consola según el rol de la sesión.
type ConsoleHandler struct{}

func NewConsoleHandler() *ConsoleHandler {
	return &ConsoleHandler{}
}

// Describe godoc
// @Summary      Secciones visibles de la consola
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ConsoleResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/console [get]
func (h *ConsoleHandler) Describe(c *fiber.Ctx) error {
	out, err := console.Describe(GetSession(c).Permissions())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Section godoc
// @Summary      Sección seleccionada con sus controles
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        section  path  string  true  "products | categories | orders | deliveries | inquiries | users"
// @Success      200      {object}  dto.SectionDetailResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/admin/console/{section} [get]
func (h *ConsoleHandler) Section(c *fiber.Ctx) error {
	out, err := console.DescribeSection(GetSession(c).Permissions(), c.Params("section"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
