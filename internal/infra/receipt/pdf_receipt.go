// Package receipt prints order receipts as PDF documents.
package receipt

import (
	"bytes"
	"fmt"

	"orderbot/config"
	"orderbot/internal/domain/entity"
	"orderbot/internal/domain/service"

	"github.com/phpdave11/gofpdf"
	"github.com/pkg/errors"
)

const (
	pageMargin = 15.0
	qrSize     = 35.0
	lineHeight = 7.0

	colItem  = 100.0
	colQty   = 20.0
	colPrice = 30.0
	colTotal = 30.0
)

type pdfReceiptRenderer struct {
	shop *config.ShopConfig
	qr   service.QRCodeService
}

// NewPDFReceiptRenderer creates a receipt renderer that stamps each receipt
// with the order QR code.
func NewPDFReceiptRenderer(cfg *config.Config, qr service.QRCodeService) service.ReceiptRenderer {
	shop := &config.ShopConfig{}
	if cfg != nil && cfg.Shop != nil {
		shop = cfg.Shop
	}

	return &pdfReceiptRenderer{shop: shop, qr: qr}
}

func (r *pdfReceiptRenderer) RenderReceipt(order *entity.Order) ([]byte, error) {
	if order == nil {
		return nil, errors.New("order is required")
	}

	qrPNG, err := r.qr.GenerateOrderQR(order.OrderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order QR code")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetTitle("Receipt "+order.OrderID, true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, tr(r.shop.Name), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	if r.shop.Address != "" {
		pdf.CellFormat(0, 5, tr(r.shop.Address), "", 1, "L", false, 0, "")
	}
	if r.shop.Phone != "" {
		pdf.CellFormat(0, 5, tr(r.shop.Phone), "", 1, "L", false, 0, "")
	}

	imgOpts := gofpdf.ImageOptions{ImageType: "png"}
	pdf.RegisterImageOptionsReader("order-qr", imgOpts, bytes.NewReader(qrPNG))
	pageWidth, _ := pdf.GetPageSize()
	pdf.ImageOptions("order-qr", pageWidth-pageMargin-qrSize, pageMargin, qrSize, qrSize, false, imgOpts, 0, "")

	pdf.SetY(pageMargin + qrSize + 5)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, lineHeight, "Order "+order.OrderID, "B", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 10)
	delivery := order.DeliveryInfo
	pdf.MultiCell(0, 5, tr(fmt.Sprintf(
		"Placed: %s\nStatus: %s\nCustomer: %s (%s)\nDeliver to: %s, %s\nDelivery time: %s\nPayment: %s (%s)",
		order.CreatedAt.Format("02 Jan 2006 15:04"),
		order.Status,
		delivery.RecipientName,
		delivery.RecipientPhone,
		delivery.Address,
		delivery.City,
		delivery.DeliveryTime,
		paymentLabel(order.PaymentInfo.Method),
		order.PaymentInfo.Status,
	)), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(colItem, lineHeight, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colQty, lineHeight, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colPrice, lineHeight, "Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colTotal, lineHeight, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, item := range order.Items {
		pdf.CellFormat(colItem, lineHeight, tr(item.ProductName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colQty, lineHeight, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colPrice, lineHeight, "$"+item.Price.String(), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colTotal, lineHeight, "$"+item.Subtotal().String(), "1", 1, "R", false, 0, "")
	}

	summaryWidth := colItem + colQty + colPrice
	fee := "FREE"
	if delivery.DeliveryFee > 0 {
		fee = "$" + delivery.DeliveryFee.String()
	}
	pdf.CellFormat(summaryWidth, lineHeight, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(colTotal, lineHeight, "$"+order.Subtotal().String(), "", 1, "R", false, 0, "")
	pdf.CellFormat(summaryWidth, lineHeight, "Delivery", "", 0, "R", false, 0, "")
	pdf.CellFormat(colTotal, lineHeight, fee, "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(summaryWidth, lineHeight, "Total", "T", 0, "R", false, 0, "")
	pdf.CellFormat(colTotal, lineHeight, "$"+order.TotalAmount.String(), "T", 1, "R", false, 0, "")

	if order.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "I", 9)
		pdf.MultiCell(0, 5, tr("Notes: "+order.Notes), "", "L", false)
	}

	pdf.SetY(-25)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 8, tr("Thank you for ordering from "+r.shop.Name), "T", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to write receipt")
	}

	return buf.Bytes(), nil
}

func paymentLabel(method entity.PaymentMethod) string {
	if method == entity.PaymentMethodCashOnDelivery {
		return "Cash on Delivery"
	}

	return string(method)
}
