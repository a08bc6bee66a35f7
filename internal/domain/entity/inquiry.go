package entity

import "time"

// InquiryStatus estado de seguimiento de una consulta de contacto.
type InquiryStatus string

const (
	InquiryStatusPending    InquiryStatus = "pending"
	InquiryStatusInProgress InquiryStatus = "in_progress"
	InquiryStatusCompleted  InquiryStatus = "completed"
	InquiryStatusArchived   InquiryStatus = "archived"
)

// IsValid indica si s es un estado conocido.
func (s InquiryStatus) IsValid() bool {
	switch s {
	case InquiryStatusPending, InquiryStatusInProgress, InquiryStatusCompleted, InquiryStatusArchived:
		return true
	}
	return false
}

// Inquiry mensaje recibido por el formulario público de contacto (tabla contact_submissions).
type Inquiry struct {
	ID        string
	Name      string
	Business  string
	Email     string
	Phone     string
	Message   string
	Status    InquiryStatus
	CreatedAt time.Time
}
