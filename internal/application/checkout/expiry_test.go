package checkout_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ─── Vencimiento de pagos pendientes ─────────────────────────────────────────

func TestExpireStalePayments_CancelaAnterioresAlCorte(t *testing.T) {
	f := newFixture(true)
	cutoff := fixedNow.Add(-30 * time.Minute)
	f.orders.On("CancelStalePending", mock.Anything, cutoff).Return(3, nil)

	n, err := f.uc.ExpireStalePayments(context.Background(), 30*time.Minute)

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	f.orders.AssertExpectations(t)
}

func TestExpireStalePayments_SinEdadMaximaNoHaceNada(t *testing.T) {
	f := newFixture(true)

	n, err := f.uc.ExpireStalePayments(context.Background(), 0)

	require.NoError(t, err)
	assert.Zero(t, n)
	f.orders.AssertNotCalled(t, "CancelStalePending", mock.Anything, mock.Anything)
}

func TestExpireStalePayments_ErrorDelRepositorio(t *testing.T) {
	f := newFixture(true)
	f.orders.On("CancelStalePending", mock.Anything, mock.Anything).Return(0, errors.New("db down"))

	_, err := f.uc.ExpireStalePayments(context.Background(), time.Hour)

	assert.ErrorContains(t, err, "expirar pagos")
}

func TestScheduleExpiry_ExpresionInvalida(t *testing.T) {
	f := newFixture(true)

	_, err := f.uc.ScheduleExpiry(context.Background(), "cada diez minutos", time.Hour)

	assert.Error(t, err)
}

func TestScheduleExpiry_RegistraUnaTarea(t *testing.T) {
	f := newFixture(true)

	c, err := f.uc.ScheduleExpiry(context.Background(), "*/10 * * * *", time.Hour)

	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)
}
