// seed_catalog genera el script SQL que carga categorías y productos del catálogo
// a partir de una planilla CSV exportada por el equipo comercial.
//
// Uso: go run ./cmd/seed_catalog [-latin1] [ruta/catalogo.csv]
// Por defecto lee catalogo.csv del directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_catalog.sql
//
// Columnas (con encabezado): category,name,price,unit,description,in_stock,is_seasonal,seasonal_period
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Espacio de nombres de los UUID deterministas: regenerar el script no duplica filas.
var seedNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://agrilconnect.in/catalog"))

type row struct {
	Category       string
	Name           string
	Price          decimal.Decimal
	Unit           string
	Description    string
	InStock        bool
	IsSeasonal     bool
	SeasonalPeriod string
}

var columns = []string{"category", "name", "price", "unit", "description", "in_stock", "is_seasonal", "seasonal_period"}

func main() {
	latin1 := flag.Bool("latin1", false, "la planilla está en ISO-8859-1 (export de Excel)")
	flag.Parse()

	csvPath := "catalogo.csv"
	if flag.NArg() > 0 {
		csvPath = flag.Arg(0)
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var in io.Reader = f
	if *latin1 {
		in = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}
	rows, err := parseCatalog(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer catálogo: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "002_seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	cats, err := writeSeed(out, rows, filepath.Base(csvPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d categorías, %d productos\n", outPath, cats, len(rows))
}

// parseCatalog lee la planilla. Exige el encabezado en el orden de columns.
func parseCatalog(r io.Reader) ([]row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("planilla vacía")
	}
	header := records[0]
	if len(header) < len(columns) {
		return nil, fmt.Errorf("encabezado: se esperaban %d columnas, hay %d", len(columns), len(header))
	}
	for i, c := range columns {
		if !strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff")), c) {
			return nil, fmt.Errorf("encabezado: columna %d debe ser %q", i+1, c)
		}
	}

	out := make([]row, 0, len(records)-1)
	for n, rec := range records[1:] {
		line := n + 2
		get := func(i int) string {
			if i < len(rec) {
				return strings.TrimSpace(rec[i])
			}
			return ""
		}
		r := row{
			Category:       get(0),
			Name:           get(1),
			Unit:           get(3),
			Description:    get(4),
			InStock:        true,
			SeasonalPeriod: get(7),
		}
		if r.Category == "" || r.Name == "" || r.Unit == "" {
			return nil, fmt.Errorf("línea %d: category, name y unit son obligatorios", line)
		}
		price, err := decimal.NewFromString(strings.ReplaceAll(get(2), ",", ""))
		if err != nil || price.IsNegative() {
			return nil, fmt.Errorf("línea %d: precio %q inválido", line, get(2))
		}
		r.Price = price.Round(2)
		if v := get(5); v != "" {
			if r.InStock, err = strconv.ParseBool(v); err != nil {
				return nil, fmt.Errorf("línea %d: in_stock %q", line, v)
			}
		}
		if v := get(6); v != "" {
			if r.IsSeasonal, err = strconv.ParseBool(v); err != nil {
				return nil, fmt.Errorf("línea %d: is_seasonal %q", line, v)
			}
		}
		if !r.IsSeasonal {
			r.SeasonalPeriod = ""
		}
		out = append(out, r)
	}
	return out, nil
}

// writeSeed escribe categorías (ordenadas) y luego productos. Devuelve el número de categorías.
func writeSeed(w io.Writer, rows []row, source string) (int, error) {
	catSet := make(map[string]struct{})
	for _, r := range rows {
		catSet[r.Category] = struct{}{}
	}
	cats := make([]string, 0, len(catSet))
	for c := range catSet {
		cats = append(cats, c)
	}
	sort.Strings(cats)

	var b strings.Builder
	b.WriteString("-- +goose Up\n")
	b.WriteString("-- Catálogo inicial de categorías y productos\n")
	fmt.Fprintf(&b, "-- Generado desde %s\n\n", source)

	if len(cats) > 0 {
		b.WriteString("-- 1. Categorías\n")
		b.WriteString("INSERT INTO categories (id, name) VALUES\n")
		for i, c := range cats {
			sep := ","
			if i == len(cats)-1 {
				sep = ""
			}
			fmt.Fprintf(&b, "  ('%s', '%s')%s\n", categoryID(c), escapeSQL(c), sep)
		}
		b.WriteString("ON CONFLICT (name) DO NOTHING;\n\n")
	}

	b.WriteString("-- 2. Productos (categoría resuelta por nombre)\n")
	for _, r := range rows {
		period := "NULL"
		if r.SeasonalPeriod != "" {
			period = "'" + escapeSQL(r.SeasonalPeriod) + "'"
		}
		b.WriteString("INSERT INTO products (id, category_id, name, price, unit, description, in_stock, is_seasonal, seasonal_period)\n")
		fmt.Fprintf(&b, "SELECT '%s', id, '%s', %s, '%s', '%s', %t, %t, %s FROM categories WHERE name = '%s'\n",
			productID(r.Category, r.Name), escapeSQL(r.Name), r.Price.StringFixed(2), escapeSQL(r.Unit),
			escapeSQL(r.Description), r.InStock, r.IsSeasonal, period, escapeSQL(r.Category))
		b.WriteString("ON CONFLICT (id) DO UPDATE SET price = EXCLUDED.price, in_stock = EXCLUDED.in_stock;\n")
	}

	_, err := io.WriteString(w, b.String())
	return len(cats), err
}

func categoryID(name string) uuid.UUID {
	return uuid.NewSHA1(seedNamespace, []byte("category/"+strings.ToLower(name)))
}

func productID(category, name string) uuid.UUID {
	return uuid.NewSHA1(seedNamespace, []byte("product/"+strings.ToLower(category)+"/"+strings.ToLower(name)))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
