package repository

import (
	"github.com/gasdistrib/relatorio-dashboard-go/internal/domain/entity"
)

// ExportRepository define a interface de exportação do relatório.
// Todos os métodos consomem o mesmo modelo de documento já formatado;
// nenhum renderizador recalcula agregados por conta própria.
type ExportRepository interface {
	ExportToPDF(doc *entity.ReportDocument, filename, outputDir string) (string, error)
	ExportToXLSX(doc *entity.ReportDocument, filename, outputDir string) (string, error)
	ExportToCSV(doc *entity.ReportDocument, filename, outputDir string) (string, error)
	ExportToJSON(doc *entity.ReportDocument, filename, outputDir string) (string, error)

	// ExportPrintDocument grava o documento de impressão (HTML autocontido
	// que dispara o diálogo de impressão ao carregar).
	ExportPrintDocument(doc *entity.ReportDocument, filename, outputDir string) (string, error)

	// OpenInBrowser abre o documento de impressão no navegador padrão.
	OpenInBrowser(path string) error
}
