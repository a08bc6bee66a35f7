package dto

import "time"

// ContactRequest formulario público de contacto. Todos los campos son obligatorios.
type ContactRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Business string `json:"business" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,max=255"`
	Phone    string `json:"phone" validate:"required,max=32"`
	Message  string `json:"message" validate:"required,max=5000"`
}

// ContactResponse respuesta del formulario público.
type ContactResponse struct {
	Success bool            `json:"success"`
	Data    InquiryResponse `json:"data"`
}

// InquiryResponse consulta recibida.
type InquiryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Business  string    `json:"business"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// InquiryListResponse lista de consultas.
type InquiryListResponse struct {
	Items    []InquiryResponse `json:"items"`
	Controls *PanelControls    `json:"controls,omitempty"`
}

// UpdateInquiryStatusRequest nuevo estado de seguimiento.
type UpdateInquiryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed archived"`
}
