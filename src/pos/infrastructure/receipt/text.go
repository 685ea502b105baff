package receipt

import (
	"fmt"
	"strings"

	"pos/src/pos/domain/entity"
)

const lineWidth = 48

// TextRenderer renderiza un recibo como texto plano de ancho fijo,
// listo para una impresora térmica o para guardar como .txt
type TextRenderer struct {
	StoreName string
}

// NewTextRenderer crea un renderer con el nombre del local
func NewTextRenderer(storeName string) *TextRenderer {
	return &TextRenderer{StoreName: storeName}
}

// Lines arma el recibo línea por línea: encabezado, items con formato de
// columnas fijas, totales y la línea de puntos si corresponde
func (r *TextRenderer) Lines(sale *entity.Sale, paymentMethodName string) []string {
	divider := strings.Repeat("-", lineWidth)

	lines := []string{
		center(r.StoreName),
		divider,
		fmt.Sprintf("Invoice: %s", sale.InvoiceNo),
		fmt.Sprintf("Date:    %s", sale.CreatedAt.Format("2006-01-02 15:04:05")),
		fmt.Sprintf("Staff:   %s", sale.Staff),
		divider,
		fmt.Sprintf("%-24s %4s %8s %9s", "Item", "Qty", "Price", "Subtotal"),
	}

	for _, item := range sale.Items {
		name := item.ProductName
		if len(name) > 24 {
			name = name[:24]
		}
		lines = append(lines, fmt.Sprintf("%-24s %4d %8s %9s",
			name,
			item.Quantity,
			item.UnitPrice.StringFixed(2),
			item.Subtotal.StringFixed(2),
		))
	}

	lines = append(lines,
		divider,
		fmt.Sprintf("%-30s %16s", "Subtotal:", "$"+sale.Subtotal.StringFixed(2)),
		fmt.Sprintf("%-30s %16s", "Tax:", "$"+sale.Tax.StringFixed(2)),
		fmt.Sprintf("%-30s %16s", "Discount:", "-$"+sale.Discount.StringFixed(2)),
		fmt.Sprintf("%-30s %16s", "GRAND TOTAL:", "$"+sale.GrandTotal.StringFixed(2)),
		divider,
	)

	payment := fmt.Sprintf("Payment: %s", paymentMethodName)
	if sale.PaymentDetails != "" {
		payment += fmt.Sprintf(" (%s)", sale.PaymentDetails)
	}
	lines = append(lines, payment)

	if sale.PointsUsed > 0 {
		lines = append(lines, fmt.Sprintf("Loyalty points redeemed: %d", sale.PointsUsed))
	}
	if sale.PointsEarned > 0 {
		lines = append(lines, fmt.Sprintf("Loyalty points earned: %d", sale.PointsEarned))
	}

	lines = append(lines, divider, center("Thank you for your purchase!"))

	return lines
}

// Render retorna el recibo como un único string
func (r *TextRenderer) Render(sale *entity.Sale, paymentMethodName string) string {
	return strings.Join(r.Lines(sale, paymentMethodName), "\n") + "\n"
}

func center(s string) string {
	if len(s) >= lineWidth {
		return s
	}
	pad := (lineWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}
