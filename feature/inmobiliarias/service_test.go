package inmobiliarias_test

import (
	"context"
	"testing"

	"redelex-panel/core/database"
	"redelex-panel/feature/inmobiliarias"
	"redelex-panel/feature/inmobiliarias/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) *inmobiliarias.Service {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, &models.Inmobiliaria{}))
	return inmobiliarias.NewService(inmobiliarias.NewRepository(db), zap.NewNop())
}

func seed(t *testing.T, svc *inmobiliarias.Service) {
	t.Helper()
	off := false
	for _, in := range []inmobiliarias.Input{
		{Nit: "900100200", Nombre: "Arriendos del Norte", Ciudad: "Bogotá", Codigo: "AN-01"},
		{Nit: "900100201", Nombre: "Inmobiliaria Andina", Ciudad: "Medellín", Email: "contacto@andina.co"},
		{Nit: "900100202", Nombre: "Casas y Rentas", Ciudad: "bogota", Activo: &off},
	} {
		_, err := svc.Create(context.Background(), in)
		require.NoError(t, err)
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	m, err := svc.Create(ctx, inmobiliarias.Input{Nit: " 900100200 ", Nombre: "Arriendos", Email: "INFO@Arriendos.co"})
	require.NoError(t, err)
	assert.Equal(t, "900100200", m.Nit)
	assert.Equal(t, "info@arriendos.co", m.Email)
	assert.True(t, m.Activo)

	_, err = svc.Create(ctx, inmobiliarias.Input{Nit: "900100200", Nombre: "Otra"})
	assert.ErrorIs(t, err, inmobiliarias.ErrNitTaken)

	for field, in := range map[string]inmobiliarias.Input{
		"nit":    {Nombre: "Sin NIT"},
		"nombre": {Nit: "123"},
	} {
		_, err := svc.Create(ctx, in)
		var verr *inmobiliarias.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, field, verr.Field)
	}

	_, err = svc.Create(ctx, inmobiliarias.Input{Nit: "12A", Nombre: "X"})
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	seed(t, svc)

	page, err := svc.List(ctx, inmobiliarias.ListQuery{Ciudad: "Bogota"})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)

	active := true
	page, err = svc.List(ctx, inmobiliarias.ListQuery{Ciudad: "bogotá", Activo: &active})
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)
	assert.Equal(t, "Arriendos del Norte", page.Items[0].Nombre)

	page, err = svc.List(ctx, inmobiliarias.ListQuery{Q: "andina"})
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)
	assert.Equal(t, "900100201", page.Items[0].Nit)

	page, err = svc.List(ctx, inmobiliarias.ListQuery{Page: 2, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.Len(t, page.Items, 1)
}

func TestUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	seed(t, svc)

	m, err := svc.Update(ctx, 1, inmobiliarias.Input{Telefono: "6015550000"})
	require.NoError(t, err)
	assert.Equal(t, "6015550000", m.Telefono)
	assert.Equal(t, "Arriendos del Norte", m.Nombre)

	_, err = svc.Update(ctx, 1, inmobiliarias.Input{Nit: "900100201"})
	assert.ErrorIs(t, err, inmobiliarias.ErrNitTaken)

	_, err = svc.Update(ctx, 1, inmobiliarias.Input{Nit: "900100200"})
	assert.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, 1))
	assert.ErrorIs(t, svc.Delete(ctx, 1), inmobiliarias.ErrNotFound)
	_, err = svc.Get(ctx, 1)
	assert.ErrorIs(t, err, inmobiliarias.ErrNotFound)
}

func TestExport(t *testing.T) {
	svc := newService(t)
	seed(t, svc)

	table, err := svc.Export(context.Background(), inmobiliarias.ListQuery{Q: "rentas"})
	require.NoError(t, err)
	assert.Equal(t, "Inmobiliarias", table.Title)
	assert.Len(t, table.Columns, 8)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "No", table.Rows[0][7])
}
