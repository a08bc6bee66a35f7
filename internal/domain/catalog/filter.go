// Package catalog filtra el catálogo público por categoría y texto libre.
package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/agrilconnect-api/internal/domain/entity"
)

// Filter criterio de búsqueda. Campos vacíos no filtran.
type Filter struct {
	Category string // nombre de la categoría ("all" equivale a vacío)
	Query    string // coincide con nombre o descripción
}

// Apply devuelve los productos que cumplen f, en el mismo orden de entrada.
// La comparación ignora mayúsculas y acentos ("Jalapeño" ≈ "jalapeno").
func Apply(products []*entity.Product, categories []*entity.Category, f Filter) []*entity.Product {
	categoryID := ""
	wantCategory := f.Category != "" && !strings.EqualFold(f.Category, "all")
	if wantCategory {
		needle := Fold(f.Category)
		for _, c := range categories {
			if Fold(c.Name) == needle {
				categoryID = c.ID
				break
			}
		}
		if categoryID == "" {
			return []*entity.Product{}
		}
	}

	query := Fold(strings.TrimSpace(f.Query))
	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if wantCategory && p.CategoryID != categoryID {
			continue
		}
		if query != "" && !strings.Contains(Fold(p.Name), query) && !strings.Contains(Fold(p.Description), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Fold normaliza s para comparación: sin marcas diacríticas y en case folding Unicode.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(stripped)
}
