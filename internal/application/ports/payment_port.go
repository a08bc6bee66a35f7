package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentRequest datos para abrir una sesión de pago en la pasarela.
type PaymentRequest struct {
	OrderID       string          // id interno; viaja como receipt
	Amount        decimal.Decimal // en la moneda mayor (rupias); el adaptador convierte a paise
	Currency      string
	Description   string
	CustomerEmail string
	CustomerPhone string
}

// PaymentSession lo que el cliente necesita para abrir el checkout de la pasarela.
type PaymentSession struct {
	GatewayOrderID string
	KeyID          string
	AmountMinor    int64 // paise
	Currency       string
	Description    string
	CustomerEmail  string
	CustomerPhone  string
}

// PaymentGateway puerto de salida hacia la pasarela de pagos (Razorpay u otra).
type PaymentGateway interface {
	// CreateSession registra el cobro en la pasarela. El ctx debe llevar timeout.
	CreateSession(ctx context.Context, req PaymentRequest) (*PaymentSession, error)
	// VerifySignature valida la firma devuelta por la pasarela tras un pago exitoso.
	VerifySignature(gatewayOrderID, paymentID, signature string) bool
}
