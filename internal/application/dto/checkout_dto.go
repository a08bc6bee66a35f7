package dto

// CheckoutRequest datos de entrega y forma de pago.
type CheckoutRequest struct {
	DeliveryAddress string `json:"delivery_address" validate:"required,max=500"`
	DeliveryDate    string `json:"delivery_date" validate:"required,datetime=2006-01-02"`
	DeliveryTime    string `json:"delivery_time" validate:"omitempty,datetime=15:04"`
	PaymentMethod   string `json:"payment_method" validate:"required,oneof=cod razorpay"`
}

// PaymentSessionResponse datos para abrir el checkout de la pasarela en el cliente.
type PaymentSessionResponse struct {
	KeyID          string `json:"key_id"`
	GatewayOrderID string `json:"gateway_order_id"`
	Amount         int64  `json:"amount"` // en paise
	Currency       string `json:"currency"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Email          string `json:"email"`
	Contact        string `json:"contact"`
}

// CheckoutResponse pedido creado y, en pago en línea, la sesión de la pasarela.
type CheckoutResponse struct {
	Order   OrderResponse           `json:"order"`
	Payment *PaymentSessionResponse `json:"payment,omitempty"`
}

// ConfirmPaymentRequest resultado del checkout de la pasarela reportado por el cliente.
// Con Failed=true el pedido se cancela sin verificar firma.
type ConfirmPaymentRequest struct {
	GatewayOrderID string `json:"razorpay_order_id" validate:"required_unless=Failed true"`
	PaymentID      string `json:"razorpay_payment_id" validate:"required_unless=Failed true"`
	Signature      string `json:"razorpay_signature" validate:"required_unless=Failed true"`
	Failed         bool   `json:"failed"`
	Reason         string `json:"reason" validate:"max=500"`
}
