package ports

import "github.com/jhoicas/agrilconnect-api/internal/domain/entity"

// ReceiptRenderer genera el comprobante de un pedido (PDF).
type ReceiptRenderer interface {
	RenderOrderReceipt(order *entity.Order, storeName string) ([]byte, error)
}
