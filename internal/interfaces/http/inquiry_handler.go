package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/agrilconnect-api/internal/application/dto"
	"github.com/jhoicas/agrilconnect-api/internal/application/usecase"
)

// InquiryHandler formulario público de contacto y panel de consultas.
type InquiryHandler struct {
	uc *usecase.InquiryUseCase
}

func NewInquiryHandler(uc *usecase.InquiryUseCase) *InquiryHandler {
	return &InquiryHandler{uc: uc}
}

// Submit godoc
// @Summary      Enviar formulario de contacto
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ContactRequest  true  "name, business, email, phone, message"
// @Success      201   {object}  dto.ContactResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/contact [post]
func (h *InquiryHandler) Submit(c *fiber.Ctx) error {
	var in dto.ContactRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Submit(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Panel de consultas
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "pending | in_progress | completed | archived"
// @Success      200     {object}  dto.InquiryListResponse
// @Router       /api/admin/inquiries [get]
func (h *InquiryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetSession(c), c.Query("status"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *InquiryHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateInquiryStatusRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	if err := h.uc.UpdateStatus(c.UserContext(), GetSession(c), id, in.Status); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "estado actualizado"})
}
