package export

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/pkg/browser"

	"github.com/gasdistrib/relatorio-dashboard-go/internal/domain/entity"
	"github.com/gasdistrib/relatorio-dashboard-go/internal/shared/types"
)

// printTemplate é o documento de impressão autocontido: mesmas seções e
// cartões do documento exportado, CSS embutido e window.print() disparado
// depois de um pequeno atraso para o layout assentar.
var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>{{.Title}} - {{.Period}}</title>
<style>
  body { font-family: Arial, Helvetica, sans-serif; color: #222; margin: 24px; }
  header { border-bottom: 2px solid #005a9c; padding-bottom: 8px; margin-bottom: 16px; }
  h1 { color: #005a9c; font-size: 20px; margin: 0 0 4px 0; }
  .meta { font-size: 12px; color: #555; }
  .cards { display: flex; flex-wrap: wrap; gap: 8px; margin: 16px 0; }
  .card { border: 1px solid #ccc; border-radius: 4px; padding: 8px 12px; min-width: 130px; }
  .card .label { font-size: 10px; text-transform: uppercase; color: #777; }
  .card .value { font-size: 15px; font-weight: bold; }
  h2 { font-size: 14px; color: #005a9c; margin: 18px 0 6px 0; }
  table { border-collapse: collapse; width: 100%; font-size: 11px; }
  th, td { border: 1px solid #bbb; padding: 4px 6px; text-align: left; }
  th { background: #e6ecf5; }
  tr.total td { font-weight: bold; background: #f5f5f5; }
  .empty { font-size: 11px; color: #888; font-style: italic; }
  @media print { body { margin: 0; } }
</style>
</head>
<body>
<header>
  <h1>{{.Title}}</h1>
  <div class="meta">Período: {{.Period}}{{if .Unit}} | {{.Unit}} - {{.City}}{{end}}</div>
  <div class="meta">Emitido em: {{.EmittedAt}} | Responsável: {{.PreparedBy}}</div>
</header>
<div class="cards">
{{range .Cards}}  <div class="card"><div class="label">{{.Label}}</div><div class="value">{{.Value}}</div></div>
{{end}}</div>
{{range .Sections}}<h2>{{.Title}}</h2>
{{if .Rows}}<table>
<thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}{{if .Total}}<tr class="total">{{range .Total}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
{{else}}<p class="empty">{{.Empty}}</p>
{{end}}{{end}}
<script>window.addEventListener("load", function () { setTimeout(function () { window.print(); }, 300); });</script>
</body>
</html>
`))

// ExportPrintDocument grava o documento de impressão em disco e devolve o
// caminho absoluto. A abertura no navegador é um passo separado
// (OpenInBrowser), para que um bloqueio de ambiente não deixe artefato
// parcial nem falhe em silêncio.
func (r *ExportRepositoryImpl) ExportPrintDocument(doc *entity.ReportDocument, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "html")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating print document: %w", err)
	}
	defer file.Close()

	if err := printTemplate.Execute(file, doc); err != nil {
		return "", fmt.Errorf("error rendering print document: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// OpenInBrowser abre o documento de impressão no navegador padrão.
func (r *ExportRepositoryImpl) OpenInBrowser(path string) error {
	if err := browser.OpenFile(path); err != nil {
		return fmt.Errorf("%w: %s", types.ErrBrowserUnavailable, err)
	}
	return nil
}
