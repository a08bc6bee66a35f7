package entity

import "time"

// Category agrupa productos en el catálogo.
type Category struct {
	ID          string
	Name        string
	Description *string
	CreatedAt   time.Time
}
