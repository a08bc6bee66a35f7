package postgres

import (
	"database/sql"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const upSQL = "-- +goose Up\nSELECT 1;\n"

// sql.Open no conecta: basta para construir el proveedor sin base de datos.
func lazyDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("pgx", "postgres://app@127.0.0.1:1/agrilconnect?sslmode=disable")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrator_OrdenNumerico(t *testing.T) {
	fsys := fstest.MapFS{
		"010_extra.sql": {Data: []byte(upSQL)},
		"002_b.sql":     {Data: []byte(upSQL)},
		"001_init.sql":  {Data: []byte(upSQL)},
	}
	p, err := newMigratorFS(lazyDB(t), fsys)
	require.NoError(t, err)

	sources := p.ListSources()
	require.Len(t, sources, 3)
	assert.Equal(t, []int64{1, 2, 10}, []int64{sources[0].Version, sources[1].Version, sources[2].Version})
}

func TestMigrator_VersionRepetidaFalla(t *testing.T) {
	fsys := fstest.MapFS{
		"001_init.sql":  {Data: []byte(upSQL)},
		"001_extra.sql": {Data: []byte(upSQL)},
	}
	_, err := newMigratorFS(lazyDB(t), fsys)
	assert.Error(t, err)
}

func TestMigrator_EmbebidasIncluyenInit(t *testing.T) {
	p, err := newMigrator(lazyDB(t))
	require.NoError(t, err)

	sources := p.ListSources()
	require.NotEmpty(t, sources)
	assert.Equal(t, int64(1), sources[0].Version)
}
