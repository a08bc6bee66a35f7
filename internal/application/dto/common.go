package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}

// PanelControls acciones que el cliente puede mostrar en un panel administrativo.
// Se calculan con el rol de la sesión; el servidor vuelve a verificar cada acción.
type PanelControls struct {
	CanCreate bool `json:"can_create"`
	CanRead   bool `json:"can_read"`
	CanUpdate bool `json:"can_update"`
	CanDelete bool `json:"can_delete"`
}

// PermissionResponse par acción/recurso.
type PermissionResponse struct {
	Action   string `json:"action"`
	Resource string `json:"resource"`
}
