// Package export implementa os renderizadores de exportação do relatório.
// Todos consomem o mesmo entity.ReportDocument já formatado; nenhum deles
// recalcula agregados ou reformata valores.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gasdistrib/relatorio-dashboard-go/internal/domain/entity"
	"github.com/gasdistrib/relatorio-dashboard-go/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// generateFilename monta o caminho final "<base>-<data>.<ext>" e garante que
// o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	filename := fmt.Sprintf("%s-%s.%s", base, time.Now().Format("2006-01-02"), ext)
	return filepath.Join(dir, filename), nil
}

// ExportToCSV grava o documento como CSV plano: uma faixa por seção, com
// título, cabeçalho, linhas e a linha de total.
func (r *ExportRepositoryImpl) ExportToCSV(doc *entity.ReportDocument, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write([]string{doc.Title, doc.Period, doc.Unit, doc.City, doc.EmittedAt, doc.PreparedBy})
	writer.Write(nil)

	for _, card := range doc.Cards {
		writer.Write([]string{card.Label, card.Value})
	}
	writer.Write(nil)

	for _, sec := range doc.Sections {
		writer.Write([]string{sec.Title})
		writer.Write(sec.Columns)
		for _, row := range sec.Rows {
			writer.Write(row)
		}
		if sec.Total != nil {
			writer.Write(sec.Total)
		}
		writer.Write(nil)
	}

	return filepath.Abs(outputFilename)
}

// ExportToJSON grava o modelo de documento completo como JSON indentado.
func (r *ExportRepositoryImpl) ExportToJSON(doc *entity.ReportDocument, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}
