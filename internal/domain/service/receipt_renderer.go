package service

import "orderbot/internal/domain/entity"

// ReceiptRenderer produces a printable receipt for an order.
type ReceiptRenderer interface {
	// RenderReceipt returns a PDF document.
	RenderReceipt(order *entity.Order) ([]byte, error)
}
