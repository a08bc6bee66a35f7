package entity

import (
	"time"

	"github.com/jhoicas/agrilconnect-api/internal/domain/rbac"
)

// BusinessProfile perfil del negocio cliente ligado a una cuenta. Role es la única
// autoridad de permisos; IsAdmin se conserva como columna heredada y se deriva de Role.
type BusinessProfile struct {
	ID            string
	UserID        string
	BusinessName  string
	OwnerName     string
	OwnerMobile   string
	ManagerMobile string
	Role          rbac.Role
	IsAdmin       bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SetRole asigna el rol y mantiene is_admin coherente con él.
func (p *BusinessProfile) SetRole(role rbac.Role) {
	p.Role = rbac.ParseRole(string(role))
	p.IsAdmin = p.Role == rbac.RoleAdmin
}
