package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/amassarte/pizzeria-backend/internal/core"
)

// ExportReceiptPDF renders a kitchen receipt for one order. The items column
// is split back into lines on the " || " separator used at submission time.
func ExportReceiptPDF(order *core.Order) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Header
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, tr("Comprobante de Pedido"), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, tr(order.ID), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	writeField := func(label, value string) {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(40, 7, tr(label), "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 7, tr(value), "", "L", false)
	}

	writeField("Fecha:", fmt.Sprintf("%s %s", order.Date, order.Time))
	writeField("Cliente:", order.CustomerName)
	writeField("Teléfono:", order.Phone)
	writeField("Entrega:", order.DeliveryType)
	if order.ZoneInfo != "" && order.ZoneInfo != "N/A" {
		writeField("Zona:", order.ZoneInfo)
	}
	if order.Address != "" && order.Address != "N/A" {
		writeField("Dirección:", order.Address)
	}
	writeField("Pago:", order.PaymentType)
	writeField("Estado:", string(order.Status))

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, tr("Pedido"), "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, line := range strings.Split(order.Items, " || ") {
		pdf.MultiCell(0, 6, tr("- "+line), "", "L", false)
	}

	if strings.TrimSpace(order.Notes) != "" {
		pdf.Ln(2)
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(0, 7, tr("Detalles adicionales"), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "I", 10)
		pdf.MultiCell(0, 6, tr(order.Notes), "", "L", false)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, tr("Total: "+order.Total), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate receipt pdf: %w", err)
	}
	return buf.Bytes(), nil
}
