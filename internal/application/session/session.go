// Package session representa la identidad de una petición autenticada.
package session

import (
	"github.com/jhoicas/agrilconnect-api/internal/domain/rbac"
)

// Session identidad resuelta por el middleware: cuenta del token más el rol leído del perfil.
// HasProfile es false para cuentas sin perfil de negocio (rol efectivo user).
type Session struct {
	UserID     string
	Email      string
	Role       rbac.Role
	ProfileID  string
	HasProfile bool
}

// New normaliza el rol (vacío o desconocido → user).
func New(userID, email string, role rbac.Role) Session {
	return Session{UserID: userID, Email: email, Role: rbac.ParseRole(string(role))}
}

// Permissions construye el evaluador para el rol de esta sesión.
// Es el único punto donde una petición obtiene sus permisos.
func (s Session) Permissions() *rbac.Evaluator {
	return rbac.NewEvaluator(s.Role)
}

// IsAuthenticated true si la sesión corresponde a una cuenta.
func (s Session) IsAuthenticated() bool {
	return s.UserID != ""
}
