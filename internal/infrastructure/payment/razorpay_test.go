package payment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agrilconnect-api/internal/application/ports"
	"github.com/jhoicas/agrilconnect-api/internal/infrastructure/payment"
	"github.com/jhoicas/agrilconnect-api/pkg/config"
)

func newGateway(baseURL string) *payment.RazorpayGateway {
	return payment.NewRazorpayGateway(config.PaymentConfig{
		KeyID: "rzp_test_key", KeySecret: "s3cr3t", BaseURL: baseURL, Currency: "INR",
	})
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(9500), payment.ToMinorUnits(decimal.NewFromInt(95)))
	assert.Equal(t, int64(4051), payment.ToMinorUnits(decimal.RequireFromString("40.505")))
}

func TestCreateSession_EnviaMontoEnPaiseYBasicAuth(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "s3cr3t", pass)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"order_ABC","amount":9500,"currency":"INR","status":"created"}`))
	}))
	defer srv.Close()

	sess, err := newGateway(srv.URL).CreateSession(context.Background(), ports.PaymentRequest{
		OrderID:       "0123456789",
		Amount:        decimal.NewFromInt(95),
		Currency:      "INR",
		Description:   "Order #01234567",
		CustomerEmail: "a@b.com",
		CustomerPhone: "9999999999",
	})
	require.NoError(t, err)

	assert.EqualValues(t, 9500, got["amount"])
	assert.Equal(t, "INR", got["currency"])
	assert.Equal(t, "0123456789", got["receipt"])

	assert.Equal(t, "order_ABC", sess.GatewayOrderID)
	assert.Equal(t, "rzp_test_key", sess.KeyID)
	assert.Equal(t, int64(9500), sess.AmountMinor)
	assert.Equal(t, "9999999999", sess.CustomerPhone)
}

func TestCreateSession_ErrorDeLaPasarela(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"amount too small"}}`))
	}))
	defer srv.Close()

	_, err := newGateway(srv.URL).CreateSession(context.Background(), ports.PaymentRequest{
		OrderID: "o-1", Amount: decimal.NewFromInt(1), Currency: "INR",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount too small")
}

func TestCreateSession_SinCredenciales(t *testing.T) {
	g := payment.NewRazorpayGateway(config.PaymentConfig{BaseURL: "http://127.0.0.1:1"})
	_, err := g.CreateSession(context.Background(), ports.PaymentRequest{OrderID: "o-1", Amount: decimal.NewFromInt(1)})
	assert.Error(t, err)
}

func TestVerifySignature(t *testing.T) {
	g := newGateway("http://unused")
	sig := payment.Sign("s3cr3t", "order_ABC", "pay_XYZ")

	assert.True(t, g.VerifySignature("order_ABC", "pay_XYZ", sig))
	assert.False(t, g.VerifySignature("order_ABC", "pay_OTRO", sig))
	assert.False(t, g.VerifySignature("order_ABC", "pay_XYZ", payment.Sign("otro", "order_ABC", "pay_XYZ")))
	assert.False(t, g.VerifySignature("order_ABC", "pay_XYZ", ""))
}
