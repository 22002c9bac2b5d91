package export

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/gasdistrib/relatorio-dashboard-go/internal/domain/entity"
)

// ExportToXLSX grava o documento como planilha: uma aba de resumo com o
// cabeçalho e os cartões, e uma aba por seção com as mesmas linhas e totais.
func (r *ExportRepositoryImpl) ExportToXLSX(doc *entity.ReportDocument, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	headStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E6ECF5"}},
	})
	if err != nil {
		return "", fmt.Errorf("error creating XLSX style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F5F5F5"}},
	})
	if err != nil {
		return "", fmt.Errorf("error creating XLSX style: %w", err)
	}

	// Aba de resumo
	const summarySheet = "Resumo"
	f.SetSheetName("Sheet1", summarySheet)
	f.SetCellValue(summarySheet, "A1", doc.Title)
	f.SetCellValue(summarySheet, "A2", "Período: "+doc.Period)
	f.SetCellValue(summarySheet, "A3", fmt.Sprintf("%s - %s", doc.Unit, doc.City))
	f.SetCellValue(summarySheet, "A4", "Emitido em: "+doc.EmittedAt)
	f.SetCellValue(summarySheet, "A5", "Responsável: "+doc.PreparedBy)
	for i, card := range doc.Cards {
		row := 7 + i
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), card.Label)
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), card.Value)
	}

	for _, sec := range doc.Sections {
		sheet := sheetName(sec.Title)
		if _, err := f.NewSheet(sheet); err != nil {
			return "", fmt.Errorf("error creating XLSX sheet %q: %w", sheet, err)
		}

		if err := writeRow(f, sheet, 1, sec.Columns); err != nil {
			return "", err
		}
		endCol, _ := excelize.ColumnNumberToName(len(sec.Columns))
		f.SetCellStyle(sheet, "A1", endCol+"1", headStyle)

		rowIdx := 2
		for _, row := range sec.Rows {
			if err := writeRow(f, sheet, rowIdx, row); err != nil {
				return "", err
			}
			rowIdx++
		}
		if sec.Total != nil {
			if err := writeRow(f, sheet, rowIdx, sec.Total); err != nil {
				return "", err
			}
			f.SetCellStyle(sheet, fmt.Sprintf("A%d", rowIdx), fmt.Sprintf("%s%d", endCol, rowIdx), totalStyle)
		}
	}

	if err := f.SaveAs(outputFilename); err != nil {
		return "", fmt.Errorf("error writing XLSX file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func writeRow(f *excelize.File, sheet string, row int, cells []string) error {
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("error addressing XLSX cell: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("error writing XLSX row: %w", err)
	}
	return nil
}

// sheetName ajusta o título da seção ao limite de 31 caracteres do Excel.
func sheetName(title string) string {
	runes := []rune(title)
	if len(runes) > 31 {
		return string(runes[:31])
	}
	return title
}
