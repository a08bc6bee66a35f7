package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const sample = `category,name,price,unit,description,in_stock,is_seasonal,seasonal_period
Vegetables,Tomatoes,40,kg,Fresh red tomatoes,true,false,
Herbs,Coriander,15.5,bunch,Aromatic,,false,ignored
Fruits,Alphonso Mango,"1,250",dozen,King's mango,true,true,April to June
`

func TestParseCatalog(t *testing.T) {
	rows, err := parseCatalog(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Tomatoes", rows[0].Name)
	assert.Equal(t, "15.5", rows[1].Price.String())
	assert.True(t, rows[1].InStock, "in_stock vacío equivale a true")
	assert.Empty(t, rows[1].SeasonalPeriod, "sin temporada no se guarda el periodo")
	assert.Equal(t, "1250", rows[2].Price.String())
	assert.Equal(t, "April to June", rows[2].SeasonalPeriod)
}

func TestParseCatalog_PrecioInvalido(t *testing.T) {
	bad := "category,name,price,unit,description,in_stock,is_seasonal,seasonal_period\nHerbs,Mint,abc,bunch,,,,\n"
	_, err := parseCatalog(strings.NewReader(bad))
	assert.ErrorContains(t, err, "línea 2")
}

func TestParseCatalog_EncabezadoIncorrecto(t *testing.T) {
	_, err := parseCatalog(strings.NewReader("name,category\nx,y\n"))
	assert.Error(t, err)
}

func TestParseCatalog_Latin1(t *testing.T) {
	src := "category,name,price,unit,description,in_stock,is_seasonal,seasonal_period\nHerbs,Jalapeño,30,kg,,,,\n"
	encoded, err := charmap.ISO8859_1.NewEncoder().String(src)
	require.NoError(t, err)

	rows, err := parseCatalog(transform.NewReader(strings.NewReader(encoded), charmap.ISO8859_1.NewDecoder()))
	require.NoError(t, err)
	assert.Equal(t, "Jalapeño", rows[0].Name)
}

func TestWriteSeed_IDsEstablesYEscapado(t *testing.T) {
	rows, err := parseCatalog(strings.NewReader(sample))
	require.NoError(t, err)

	var a, b bytes.Buffer
	n, err := writeSeed(&a, rows, "catalogo.csv")
	require.NoError(t, err)
	_, err = writeSeed(&b, rows, "catalogo.csv")
	require.NoError(t, err)

	assert.Equal(t, 3, n)
	assert.Equal(t, a.String(), b.String())
	assert.True(t, strings.HasPrefix(a.String(), "-- +goose Up\n"), "goose exige la anotación al inicio")
	assert.Contains(t, a.String(), "'King''s mango'")
	assert.Contains(t, a.String(), "1250.00")
	assert.Contains(t, a.String(), "ON CONFLICT (name) DO NOTHING;")
}
