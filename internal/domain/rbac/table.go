package rbac

// rolePermissions es la única fuente de verdad para todas las decisiones de la consola.
// Se define una vez al arrancar el proceso y no se muta.
var rolePermissions = map[Role][]Permission{
	RoleAdmin: {
		{ActionCreate, ResourceProducts},
		{ActionRead, ResourceProducts},
		{ActionUpdate, ResourceProducts},
		{ActionDelete, ResourceProducts},
		{ActionCreate, ResourceCategories},
		{ActionRead, ResourceCategories},
		{ActionUpdate, ResourceCategories},
		{ActionDelete, ResourceCategories},
		{ActionRead, ResourceOrders},
		{ActionUpdate, ResourceOrders},
		{ActionCreate, ResourceUsers},
		{ActionRead, ResourceUsers},
		{ActionUpdate, ResourceUsers},
		{ActionDelete, ResourceUsers},
		{ActionRead, ResourceInquiries},
		{ActionUpdate, ResourceInquiries},
	},
	RoleManager: {
		{ActionCreate, ResourceProducts},
		{ActionRead, ResourceProducts},
		{ActionUpdate, ResourceProducts},
		{ActionCreate, ResourceCategories},
		{ActionRead, ResourceCategories},
		{ActionUpdate, ResourceCategories},
		{ActionRead, ResourceOrders},
		{ActionUpdate, ResourceOrders},
		{ActionRead, ResourceUsers},
		{ActionRead, ResourceInquiries},
		{ActionUpdate, ResourceInquiries},
	},
	RoleStaff: {
		{ActionRead, ResourceProducts},
		{ActionRead, ResourceCategories},
		{ActionRead, ResourceOrders},
		{ActionUpdate, ResourceOrders},
	},
	RoleUser: {
		{ActionRead, ResourceProducts},
		{ActionRead, ResourceCategories},
	},
}

// grants índice precalculado rol → conjunto de permisos (lectura O(1)).
var grants = buildGrants(rolePermissions)

func buildGrants(table map[Role][]Permission) map[Role]map[Permission]struct{} {
	out := make(map[Role]map[Permission]struct{}, len(table))
	for role, perms := range table {
		set := make(map[Permission]struct{}, len(perms))
		for _, p := range perms {
			set[p] = struct{}{}
		}
		out[role] = set
	}
	return out
}

// PermissionsFor devuelve una copia de los permisos configurados para role.
// Un rol desconocido recibe los permisos de DefaultRole.
func PermissionsFor(role Role) []Permission {
	perms, ok := rolePermissions[role]
	if !ok {
		perms = rolePermissions[DefaultRole]
	}
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}
