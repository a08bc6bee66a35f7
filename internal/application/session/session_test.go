package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/agrilconnect-api/internal/application/session"
	"github.com/jhoicas/agrilconnect-api/internal/domain/rbac"
)

func TestNew_RolDesconocidoEsUser(t *testing.T) {
	s := session.New("u-1", "a@b.com", "superuser")
	assert.Equal(t, rbac.RoleUser, s.Role)
	assert.Equal(t, rbac.RoleUser, s.Permissions().CurrentRole())
}

func TestPermissions_SigueAlRolDeLaSesion(t *testing.T) {
	s := session.New("u-1", "a@b.com", rbac.RoleStaff)
	ev := s.Permissions()
	assert.True(t, ev.CanPerformAction(rbac.ActionUpdate, rbac.ResourceOrders))
	assert.False(t, ev.CanAccessResource(rbac.ResourceUsers))

	// un cambio de rol se refleja en el siguiente evaluador construido
	s.Role = rbac.RoleAdmin
	assert.True(t, s.Permissions().CanPerformAction(rbac.ActionDelete, rbac.ResourceUsers))
}

func TestIsAuthenticated(t *testing.T) {
	assert.False(t, session.Session{}.IsAuthenticated())
	assert.True(t, session.New("u-1", "", "").IsAuthenticated())
}
