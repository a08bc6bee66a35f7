// Package payment implementa la pasarela de pagos sobre la API REST de Razorpay.
package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/agrilconnect-api/internal/application/ports"
	"github.com/jhoicas/agrilconnect-api/pkg/config"
)

var _ ports.PaymentGateway = (*RazorpayGateway)(nil)

// RazorpayGateway crea órdenes de cobro (POST /v1/orders) y verifica firmas de pago.
// Usa net/http directamente; no requiere el SDK oficial.
type RazorpayGateway struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
}

// NewRazorpayGateway construye el adaptador. Con credenciales vacías CreateSession devuelve error.
func NewRazorpayGateway(cfg config.PaymentConfig) *RazorpayGateway {
	return &RazorpayGateway{
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ── Protocolo Orders API ─────────────────────────────────────────────────────

type razorpayOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type razorpayOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
	Error    *struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// ToMinorUnits convierte rupias a paise (×100, redondeo al entero).
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// CreateSession registra la orden de cobro y devuelve los datos para el checkout del cliente.
func (g *RazorpayGateway) CreateSession(ctx context.Context, req ports.PaymentRequest) (*ports.PaymentSession, error) {
	if g.keyID == "" || g.keySecret == "" {
		return nil, fmt.Errorf("razorpay: RAZORPAY_KEY_ID/RAZORPAY_KEY_SECRET no configurados")
	}
	amount := ToMinorUnits(req.Amount)
	if amount <= 0 {
		return nil, fmt.Errorf("razorpay: monto inválido %s", req.Amount)
	}

	body, err := json.Marshal(razorpayOrderRequest{
		Amount:   amount,
		Currency: req.Currency,
		Receipt:  req.OrderID,
		Notes:    map[string]string{"order_id": req.OrderID},
	})
	if err != nil {
		return nil, fmt.Errorf("razorpay: serializar request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("razorpay: crear HTTP request: %w", err)
	}
	httpReq.SetBasicAuth(g.keyID, g.keySecret)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("razorpay: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("razorpay: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, fmt.Errorf("razorpay: leer respuesta: %w", err)
	}

	var out razorpayOrderResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("razorpay: respuesta no es JSON (HTTP %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK {
		if out.Error != nil {
			return nil, fmt.Errorf("razorpay: HTTP %d %s: %s", resp.StatusCode, out.Error.Code, out.Error.Description)
		}
		return nil, fmt.Errorf("razorpay: HTTP %d", resp.StatusCode)
	}
	if out.ID == "" {
		return nil, fmt.Errorf("razorpay: respuesta sin id de orden")
	}

	return &ports.PaymentSession{
		GatewayOrderID: out.ID,
		KeyID:          g.keyID,
		AmountMinor:    out.Amount,
		Currency:       out.Currency,
		Description:    req.Description,
		CustomerEmail:  req.CustomerEmail,
		CustomerPhone:  req.CustomerPhone,
	}, nil
}

// VerifySignature compara en tiempo constante hex(HMAC-SHA256(order_id|payment_id, secret)).
func (g *RazorpayGateway) VerifySignature(gatewayOrderID, paymentID, signature string) bool {
	if g.keySecret == "" || gatewayOrderID == "" || paymentID == "" || signature == "" {
		return false
	}
	expected := Sign(g.keySecret, gatewayOrderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(signature)))
}

// Sign calcula la firma que Razorpay envía al cliente tras un pago.
func Sign(secret, gatewayOrderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
