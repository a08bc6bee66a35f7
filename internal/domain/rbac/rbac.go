// Package rbac contiene la tabla de permisos por rol y el evaluador que
// decide qué acciones del panel administrativo se muestran o ejecutan.
//
// La autorización definitiva vive en la base de datos (RLS); este paquete
// sólo filtra lo que el cliente puede ver e intentar.
package rbac

// Role nivel de identidad de una cuenta. Exactamente uno por perfil.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
	RoleUser    Role = "user"
)

// DefaultRole rol asignado al crear un perfil y usado cuando el rol es desconocido.
const DefaultRole = RoleUser

// Action operación CRUD sobre un recurso.
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Resource clase de objeto de dominio a la que se acotan los permisos.
type Resource string

const (
	ResourceProducts   Resource = "products"
	ResourceCategories Resource = "categories"
	ResourceOrders     Resource = "orders"
	ResourceUsers      Resource = "users"
	ResourceInquiries  Resource = "inquiries"
)

// Permission par (acción, recurso).
type Permission struct {
	Action   Action   `json:"action"`
	Resource Resource `json:"resource"`
}

// Roles devuelve los roles en orden de privilegio descendente.
func Roles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleStaff, RoleUser}
}

// Actions devuelve todas las acciones.
func Actions() []Action {
	return []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete}
}

// Resources devuelve todos los recursos.
func Resources() []Resource {
	return []Resource{ResourceProducts, ResourceCategories, ResourceOrders, ResourceUsers, ResourceInquiries}
}

// IsValid indica si r es uno de los cuatro roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleStaff, RoleUser:
		return true
	}
	return false
}

// IsElevated indica si el rol puede entrar a la consola administrativa.
func (r Role) IsElevated() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleStaff
}

// ParseRole normaliza un valor almacenado; cualquier valor desconocido o vacío es DefaultRole.
func ParseRole(s string) Role {
	r := Role(s)
	if r.IsValid() {
		return r
	}
	return DefaultRole
}

// IsValid indica si la acción existe.
func (a Action) IsValid() bool {
	switch a {
	case ActionCreate, ActionRead, ActionUpdate, ActionDelete:
		return true
	}
	return false
}

// IsValid indica si el recurso existe.
func (r Resource) IsValid() bool {
	switch r {
	case ResourceProducts, ResourceCategories, ResourceOrders, ResourceUsers, ResourceInquiries:
		return true
	}
	return false
}
