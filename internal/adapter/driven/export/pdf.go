package export

import (
	"fmt"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"github.com/gasdistrib/relatorio-dashboard-go/internal/domain/entity"
)

// ExportToPDF grava o documento tabular paginado: bloco de cabeçalho e, na
// ordem fixa do documento, uma tabela por seção com linha de total.
func (r *ExportRepositoryImpl) ExportToPDF(doc *entity.ReportDocument, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{0, 90, 156}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}
	tableHeadFill := [3]int{230, 236, 245}
	totalFill := [3]int{245, 245, 245}

	const pageWidth = 190.0

	drawTable := func(sec entity.DocumentSection) {
		// Quebra de página manual antes do título para não órfão-lo.
		if pdf.GetY() > 250 {
			pdf.AddPage()
		}

		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(sec.Title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+pageWidth, pdf.GetY())
		pdf.Ln(3)

		if len(sec.Rows) == 0 {
			pdf.SetFont("Arial", "I", 9)
			pdf.SetTextColor(120, 120, 120)
			pdf.MultiCell(pageWidth, 5, tr(sec.Empty), "", "L", false)
			pdf.Ln(6)
			return
		}

		colWidth := pageWidth / float64(len(sec.Columns))

		pdf.SetFont("Arial", "B", 8)
		pdf.SetFillColor(tableHeadFill[0], tableHeadFill[1], tableHeadFill[2])
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		for _, col := range sec.Columns {
			pdf.CellFormat(colWidth, 6, tr(col), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 8)
		for _, row := range sec.Rows {
			if pdf.GetY() > 270 {
				pdf.AddPage()
			}
			for _, cell := range row {
				pdf.CellFormat(colWidth, 6, tr(cell), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}

		if sec.Total != nil {
			pdf.SetFont("Arial", "B", 8)
			pdf.SetFillColor(totalFill[0], totalFill[1], totalFill[2])
			for _, cell := range sec.Total {
				pdf.CellFormat(colWidth, 6, tr(cell), "1", 0, "L", true, 0, "")
			}
			pdf.Ln(-1)
		}

		pdf.Ln(6)
	}

	pdf.AddPage()

	// Cabeçalho
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  %s", doc.Title)), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Período: %s", doc.Period)), "", 1, "L", true, 0, "")
	if doc.Unit != "" || doc.City != "" {
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("  %s - %s", doc.Unit, doc.City)), "", 1, "L", true, 0, "")
	}
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Emitido em: %s  |  Responsável: %s", doc.EmittedAt, doc.PreparedBy)), "", 1, "L", true, 0, "")
	pdf.Ln(8)

	// Seções, na ordem do documento
	for _, sec := range doc.Sections {
		drawTable(sec)
	}

	// Rodapé
	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("%s | %s", doc.Title, doc.EmittedAt)), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}
