package rbac

import (
	"fmt"

	"github.com/jhoicas/agrilconnect-api/internal/domain"
)

// Evaluator responde consultas de permisos para un rol fijo.
// Es inmutable y seguro para uso concurrente.
type Evaluator struct {
	role   Role
	grants map[Permission]struct{}
}

// NewEvaluator construye el evaluador para role. Un rol no reconocido se trata como DefaultRole.
func NewEvaluator(role Role) *Evaluator {
	if !role.IsValid() {
		role = DefaultRole
	}
	return &Evaluator{role: role, grants: grants[role]}
}

// CurrentRole rol al que está ligado el evaluador.
func (e *Evaluator) CurrentRole() Role {
	return e.role
}

// HasPermission true sii p está en el conjunto del rol.
func (e *Evaluator) HasPermission(p Permission) bool {
	_, ok := e.grants[p]
	return ok
}

// CanPerformAction atajo de HasPermission.
func (e *Evaluator) CanPerformAction(action Action, resource Resource) bool {
	return e.HasPermission(Permission{Action: action, Resource: resource})
}

// CanAccessResource true si el rol tiene al menos una acción sobre resource.
// Decide si se ofrece la sección completa, no si se puede ejecutar una acción concreta.
func (e *Evaluator) CanAccessResource(resource Resource) bool {
	for p := range e.grants {
		if p.Resource == resource {
			return true
		}
	}
	return false
}

// CanEnterConsole puerta de entrada: sólo admin, manager y staff.
func (e *Evaluator) CanEnterConsole() bool {
	return e.role.IsElevated()
}

// Authorize devuelve nil si la acción está permitida o un error que envuelve domain.ErrForbidden.
func (e *Evaluator) Authorize(action Action, resource Resource) error {
	if e.CanPerformAction(action, resource) {
		return nil
	}
	return fmt.Errorf("%w: rol %s no puede %s %s", domain.ErrForbidden, e.role, action, resource)
}
