package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agrilconnect-api/internal/domain/entity"
	"github.com/jhoicas/agrilconnect-api/internal/infrastructure/pdf"
)

func TestFormatRupees(t *testing.T) {
	assert.Equal(t, "Rs. 95.00", pdf.FormatRupees(decimal.NewFromInt(95)))
	assert.Equal(t, "Rs. 1,250.50", pdf.FormatRupees(decimal.RequireFromString("1250.5")))
	assert.Equal(t, "Rs. 1,000,000.00", pdf.FormatRupees(decimal.NewFromInt(1000000)))
	assert.Equal(t, "-Rs. 40.00", pdf.FormatRupees(decimal.NewFromInt(-40)))
}

func TestRenderOrderReceipt_GeneraPDF(t *testing.T) {
	order := &entity.Order{
		ID:              "0123456789abcdef",
		Status:          entity.OrderStatusConfirmed,
		PaymentMethod:   entity.PaymentMethodCOD,
		TotalAmount:     decimal.NewFromInt(95),
		DeliveryAddress: "12 Market Road",
		DeliveryDate:    time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC),
		CreatedAt:       time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC),
		Customer:        &entity.OrderCustomer{BusinessName: "Green Grocers", OwnerName: "Asha", OwnerMobile: "9999999999"},
		Items: []entity.OrderItem{
			{ProductID: "p-1", ProductName: "Tomatoes", ProductUnit: "kg", Quantity: 2, UnitPrice: decimal.NewFromInt(40), TotalPrice: decimal.NewFromInt(80)},
			{ProductID: "p-2", ProductName: "Coriander", ProductUnit: "bunch", Quantity: 1, UnitPrice: decimal.NewFromInt(15), TotalPrice: decimal.NewFromInt(15)},
		},
	}

	raw, err := pdf.NewReceiptGenerator().RenderOrderReceipt(order, "AgrilConnect")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")), "debe empezar con la cabecera PDF")
}

func TestRenderOrderReceipt_PedidoNil(t *testing.T) {
	_, err := pdf.NewReceiptGenerator().RenderOrderReceipt(nil, "AgrilConnect")
	assert.Error(t, err)
}
