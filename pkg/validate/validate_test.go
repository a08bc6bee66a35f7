package validate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agrilconnect-api/pkg/validate"
)

type contacto struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,oneof=admin manager staff user"`
}

func TestStruct_Valido(t *testing.T) {
	assert.NoError(t, validate.Struct(contacto{Name: "Ana", Email: "ana@example.com"}))
}

func TestStruct_ErroresPorCampoConNombreJSON(t *testing.T) {
	err := validate.Struct(contacto{Email: "no-es-email", Role: "root"})
	require.Error(t, err)

	var verr *validate.Error
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "role")
	assert.Equal(t, "name es requerido", verr.Fields["name"])
}

func TestStruct_LoginPorNombreOEmail(t *testing.T) {
	type login struct {
		BusinessName string `json:"business_name" validate:"required_without=Email"`
		Email        string `json:"email" validate:"omitempty,email"`
	}
	assert.NoError(t, validate.Struct(login{BusinessName: "Green Grocers"}))
	assert.NoError(t, validate.Struct(login{Email: "a@b.com"}))

	err := validate.Struct(login{})
	var verr *validate.Error
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "business_name")
}

func TestStruct_FechaDeEntrega(t *testing.T) {
	type entrega struct {
		Date string `json:"delivery_date" validate:"required,datetime=2006-01-02"`
	}
	assert.NoError(t, validate.Struct(entrega{Date: "2026-10-16"}))

	err := validate.Struct(entrega{Date: "16/10/2026"})
	var verr *validate.Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "delivery_date debe tener el formato 2006-01-02", verr.Fields["delivery_date"])
}
