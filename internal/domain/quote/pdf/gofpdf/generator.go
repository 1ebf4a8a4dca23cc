package gofpdf

import (
	"bytes"
	"fmt"
	"log"

	"github.com/jung-kurt/gofpdf"

	"eco-urh/go_backend/internal/domain/quote"
)

// Generator renders a quote snapshot as the printable A4 document: fixed
// business header, client block, sectioned item table, highlighted total and
// the terms footer. It shows exactly the fields the HTML preview shows, in
// the same order.
type Generator struct{}

func New() *Generator { return &Generator{} }

func (g *Generator) Generate(s quote.Snapshot) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Cotización", false)
	// Core fonts cover Spanish once text goes through the cp1252 translator.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(140, 9, "ECO SISTEMAS URH SAC")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 9, tr(fmt.Sprintf("LIMA, %s", s.Date)), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, "Mza It9 A.V Nueva Gales - Cieneguilla", "", 1, "", false, 0, "")
	pdf.CellFormat(0, 5, "Cel: 998270102 - 985832096", "", 1, "", false, 0, "")
	pdf.CellFormat(0, 5, "Email: ecosistemas_urh_sac@hotmail.com", "B", 1, "", false, 0, "")
	pdf.Ln(6)

	pdf.SetFillColor(249, 250, 251)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(0, 6, "CLIENTE(S):", "", 1, "", true, 0, "")
	for _, c := range s.Clients {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 6, tr(c.Name), "", 1, "", true, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 5, tr(fmt.Sprintf("%s | %s", c.Phone, c.Email)), "", 1, "", true, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFillColor(31, 41, 55)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(150, 7, tr("DESCRIPCIÓN"), "", 0, "", true, 0, "")
	pdf.CellFormat(40, 7, "PRECIO", "", 1, "R", true, 0, "")
	pdf.SetTextColor(0, 0, 0)

	for _, section := range s.Sections {
		title := section.Title
		if title == "" {
			title = "(Sin Categoría)"
		}
		pdf.SetFillColor(243, 244, 246)
		pdf.SetTextColor(30, 58, 138)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(0, 6, tr(title), "", 1, "", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 10)
		for _, it := range section.Items {
			pdf.CellFormat(150, 6, tr(it.Description), "B", 0, "", false, 0, "")
			pdf.CellFormat(40, 6, tr(quote.FormatPEN(it.Price)), "B", 1, "R", false, 0, "")
		}
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(150, 8, "TOTAL:", "T", 0, "R", false, 0, "")
	pdf.SetFillColor(254, 249, 195)
	pdf.CellFormat(40, 8, tr(quote.FormatPEN(s.Total)), "T", 1, "R", true, 0, "")

	pdf.Ln(8)
	pdf.SetTextColor(107, 114, 128)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(0, 5, tr("Términos y Condiciones:"), "T", 1, "", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(0, 4, tr("• Validez de la oferta: 15 días calendario."), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 4, tr("• Garantía: 1 año por defectos de fabricación."), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 4, "• Forma de pago: 50% adelanto, 50% al finalizar.", "", 1, "", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("quote pdf: output failed: %v", err)
		return nil, err
	}
	return buf.Bytes(), nil
}
