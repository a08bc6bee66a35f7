package dto

// SectionResponse sección navegable de la consola administrativa.
type SectionResponse struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Resource string `json:"resource"`
}

// ConsoleResponse secciones visibles para el rol de la sesión, en orden fijo.
type ConsoleResponse struct {
	Role     string            `json:"role"`
	Sections []SectionResponse `json:"sections"`
}

// SectionDetailResponse sección seleccionada con las acciones de su panel.
type SectionDetailResponse struct {
	Section  SectionResponse `json:"section"`
	Controls PanelControls   `json:"controls"`
}
