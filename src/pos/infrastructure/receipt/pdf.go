package receipt

import (
	"io"

	"pos/src/pos/domain/entity"

	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer es el renderer alternativo de recibos: mismo contenido que el
// de texto, tipografía monoespaciada, una línea por renglón
type PDFRenderer struct {
	text *TextRenderer
}

// NewPDFRenderer crea un renderer PDF sobre el de texto
func NewPDFRenderer(storeName string) *PDFRenderer {
	return &PDFRenderer{text: NewTextRenderer(storeName)}
}

// Render escribe el recibo en PDF sobre el writer recibido
func (r *PDFRenderer) Render(sale *entity.Sale, paymentMethodName string, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Courier", "", 10)
	pdf.AddPage()

	const lineHeight = 5.0
	for _, line := range r.text.Lines(sale, paymentMethodName) {
		pdf.CellFormat(0, lineHeight, line, "", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}
