package console_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agrilconnect-api/internal/application/console"
	"github.com/jhoicas/agrilconnect-api/internal/domain"
	"github.com/jhoicas/agrilconnect-api/internal/domain/rbac"
)

func ids(list []console.Section) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s.ID)
	}
	return out
}

// ─── Puerta de entrada ────────────────────────────────────────────────────────

func TestEnter_SoloRolesElevados(t *testing.T) {
	for _, r := range []rbac.Role{rbac.RoleAdmin, rbac.RoleManager, rbac.RoleStaff} {
		assert.NoError(t, console.Enter(rbac.NewEvaluator(r)), string(r))
	}
	err := console.Enter(rbac.NewEvaluator(rbac.RoleUser))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// user puede leer productos, pero la puerta de entrada prevalece.
func TestSelect_UserRechazadoAunqueLeaProductos(t *testing.T) {
	ev := rbac.NewEvaluator(rbac.RoleUser)
	require.True(t, ev.CanAccessResource(rbac.ResourceProducts))

	_, err := console.Select(ev, "products")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, console.VisibleSections(ev))
}

// ─── Secciones visibles ───────────────────────────────────────────────────────

func TestVisibleSections_PorRol(t *testing.T) {
	all := []string{"products", "categories", "orders", "deliveries", "inquiries", "users"}
	assert.Equal(t, all, ids(console.VisibleSections(rbac.NewEvaluator(rbac.RoleAdmin))))
	assert.Equal(t, all, ids(console.VisibleSections(rbac.NewEvaluator(rbac.RoleManager))))
	assert.Equal(t,
		[]string{"products", "categories", "orders", "deliveries"},
		ids(console.VisibleSections(rbac.NewEvaluator(rbac.RoleStaff))),
	)
}

func TestVisibleSections_EquivaleAFiltrarPorAcceso(t *testing.T) {
	for _, r := range []rbac.Role{rbac.RoleAdmin, rbac.RoleManager, rbac.RoleStaff} {
		ev := rbac.NewEvaluator(r)
		var want []string
		for _, s := range console.Sections() {
			if ev.CanAccessResource(s.Resource) {
				want = append(want, s.ID)
			}
		}
		assert.Equal(t, want, ids(console.VisibleSections(ev)), string(r))
	}
}

// ─── Selección ────────────────────────────────────────────────────────────────

func TestSelect_StaffNoPuedeAbrirUsuarios(t *testing.T) {
	ev := rbac.NewEvaluator(rbac.RoleStaff)
	_, err := console.Select(ev, "users")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	s, err := console.Select(ev, "deliveries")
	require.NoError(t, err)
	assert.Equal(t, rbac.ResourceOrders, s.Resource)
}

func TestSelect_SeccionDesconocida(t *testing.T) {
	_, err := console.Select(rbac.NewEvaluator(rbac.RoleAdmin), "reports")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ─── Controles de panel ───────────────────────────────────────────────────────

func TestControls_ManagerProductosSinBorrar(t *testing.T) {
	c := console.Controls(rbac.NewEvaluator(rbac.RoleManager), rbac.ResourceProducts)
	assert.True(t, c.CanCreate)
	assert.True(t, c.CanUpdate)
	assert.False(t, c.CanDelete)
}

func TestControls_StaffPedidosSoloActualizar(t *testing.T) {
	c := console.Controls(rbac.NewEvaluator(rbac.RoleStaff), rbac.ResourceOrders)
	assert.True(t, c.CanRead)
	assert.True(t, c.CanUpdate)
	assert.False(t, c.CanCreate)
	assert.False(t, c.CanDelete)
}

func TestControls_StaffUsuariosSinNingunControl(t *testing.T) {
	c := console.Controls(rbac.NewEvaluator(rbac.RoleStaff), rbac.ResourceUsers)
	assert.False(t, c.CanCreate || c.CanRead || c.CanUpdate || c.CanDelete)
}

func TestDescribeSection_IncluyeControles(t *testing.T) {
	got, err := console.DescribeSection(rbac.NewEvaluator(rbac.RoleAdmin), "users")
	require.NoError(t, err)
	assert.Equal(t, "users", got.Section.ID)
	assert.True(t, got.Controls.CanDelete)
}

func TestDescribe_RolEnRespuesta(t *testing.T) {
	got, err := console.Describe(rbac.NewEvaluator(rbac.RoleStaff))
	require.NoError(t, err)
	assert.Equal(t, "staff", got.Role)
	assert.Len(t, got.Sections, 4)

	_, err = console.Describe(rbac.NewEvaluator(rbac.RoleUser))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
