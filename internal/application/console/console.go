// Package console define la navegación de la consola administrativa según el rol.
package console

import (
	"fmt"

	"github.com/jhoicas/agrilconnect-api/internal/application/dto"
	"github.com/jhoicas/agrilconnect-api/internal/domain"
	"github.com/jhoicas/agrilconnect-api/internal/domain/rbac"
)

// Section sección de la consola ligada al recurso que la controla.
type Section struct {
	ID       string
	Label    string
	Resource rbac.Resource
}

// sections orden fijo de la navegación. deliveries comparte recurso con orders.
var sections = []Section{
	{ID: "products", Label: "Products", Resource: rbac.ResourceProducts},
	{ID: "categories", Label: "Categories", Resource: rbac.ResourceCategories},
	{ID: "orders", Label: "Orders", Resource: rbac.ResourceOrders},
	{ID: "deliveries", Label: "Deliveries", Resource: rbac.ResourceOrders},
	{ID: "inquiries", Label: "Inquiries", Resource: rbac.ResourceInquiries},
	{ID: "users", Label: "Users", Resource: rbac.ResourceUsers},
}

// Sections copia de todas las secciones en orden.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// Enter puerta de entrada: sólo admin, manager y staff. Prevalece sobre cualquier sección.
func Enter(ev *rbac.Evaluator) error {
	if !ev.CanEnterConsole() {
		return fmt.Errorf("consola administrativa para rol %s: %w", ev.CurrentRole(), domain.ErrForbidden)
	}
	return nil
}

// VisibleSections secciones cuyo recurso es accesible, conservando el orden.
// Vacío si el rol no pasa la puerta de entrada.
func VisibleSections(ev *rbac.Evaluator) []Section {
	if Enter(ev) != nil {
		return []Section{}
	}
	out := make([]Section, 0, len(sections))
	for _, s := range sections {
		if ev.CanAccessResource(s.Resource) {
			out = append(out, s)
		}
	}
	return out
}

// Select vuelve a verificar entrada y acceso antes de devolver la sección.
// Un id que no está en la navegación visible no se puede seleccionar.
func Select(ev *rbac.Evaluator, sectionID string) (Section, error) {
	if err := Enter(ev); err != nil {
		return Section{}, err
	}
	for _, s := range sections {
		if s.ID != sectionID {
			continue
		}
		if !ev.CanAccessResource(s.Resource) {
			return Section{}, fmt.Errorf("sección %s: %w", sectionID, domain.ErrForbidden)
		}
		return s, nil
	}
	return Section{}, fmt.Errorf("sección %q: %w", sectionID, domain.ErrNotFound)
}

// Controls acciones del panel del recurso para el rol.
func Controls(ev *rbac.Evaluator, resource rbac.Resource) dto.PanelControls {
	return dto.ControlsFor(ev, resource)
}

// Describe respuesta de navegación para la sesión.
func Describe(ev *rbac.Evaluator) (dto.ConsoleResponse, error) {
	if err := Enter(ev); err != nil {
		return dto.ConsoleResponse{}, err
	}
	visible := VisibleSections(ev)
	out := dto.ConsoleResponse{Role: string(ev.CurrentRole()), Sections: make([]dto.SectionResponse, 0, len(visible))}
	for _, s := range visible {
		out.Sections = append(out.Sections, toResponse(s))
	}
	return out, nil
}

// DescribeSection sección seleccionada con sus controles.
func DescribeSection(ev *rbac.Evaluator, sectionID string) (dto.SectionDetailResponse, error) {
	s, err := Select(ev, sectionID)
	if err != nil {
		return dto.SectionDetailResponse{}, err
	}
	return dto.SectionDetailResponse{Section: toResponse(s), Controls: Controls(ev, s.Resource)}, nil
}

func toResponse(s Section) dto.SectionResponse {
	return dto.SectionResponse{ID: s.ID, Label: s.Label, Resource: string(s.Resource)}
}
