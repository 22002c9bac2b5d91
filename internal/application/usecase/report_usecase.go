package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"

	"github.com/gasdistrib/relatorio-dashboard-go/internal/application/report"
	"github.com/gasdistrib/relatorio-dashboard-go/internal/domain/entity"
	"github.com/gasdistrib/relatorio-dashboard-go/internal/domain/repository"
	"github.com/gasdistrib/relatorio-dashboard-go/internal/shared/types"
)

// DefaultReportName é a base do nome dos arquivos exportados.
const DefaultReportName = "relatorio-detalhado"

// ReportUseCase orquestra o relatório detalhado: período normalizado, fetch,
// filtros, derivação, exibição e exportação.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	exportRepo repository.ExportRepository
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface
	session    *ReportSession
}

// NewReportUseCase creates a new report use case.
func NewReportUseCase(
	reportRepo repository.ReportRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *ReportUseCase {
	return &ReportUseCase{
		reportRepo: reportRepo,
		exportRepo: exportRepo,
		configRepo: configRepo,
		console:    console,
		session:    NewReportSession(reportRepo),
	}
}

// Session expõe a sessão corrente (usado em testes e num eventual modo
// interativo).
func (uc *ReportUseCase) Session() *ReportSession {
	return uc.session
}

// RunReport executa o fluxo completo do relatório para os argumentos da CLI.
func (uc *ReportUseCase) RunReport(ctx context.Context, args *types.CLIArgs, cfg *types.Config) error {
	if args.ListClients {
		return uc.RunListClients(ctx)
	}

	rng, err := report.NormalizeRange(args.StartDate, args.EndDate)
	if err != nil {
		uc.console.LogError("%s", err)
		return nil
	}

	filters := report.Filters{Client: args.ClientFilter, Payment: args.PaymentFilter}

	status := uc.console.Status(fmt.Sprintf("Buscando relatório de %s...", rng.Label()))
	refreshErr := uc.session.Refresh(ctx, rng, args.LocationID)
	status.Stop()

	if refreshErr != nil {
		// Falha de fetch: banner de erro, estado limpo, tabelas vazias e
		// exportações bloqueadas até um fetch bem-sucedido.
		uc.console.LogError("Falha ao carregar o relatório: %s", refreshErr)
		uc.renderEmptyReport(rng, cfg)
		if args.ReportName != "" || len(args.ReportType) > 0 {
			uc.console.LogWarning("Exportação desabilitada: %s", types.ErrReportNotLoaded)
		}
		return nil
	}

	view := uc.session.View(filters)
	doc := report.BuildDocument(view, rng, time.Now())

	uc.renderReport(doc, view)

	if len(args.ReportType) > 0 {
		uc.exportReports(doc, args)
	}

	return nil
}

// RunListClients exibe o diretório de clientes usado pelo filtro.
func (uc *ReportUseCase) RunListClients(ctx context.Context) error {
	clients, err := uc.reportRepo.ListClients(ctx)
	if err != nil {
		uc.console.LogError("Falha ao listar clientes: %s", err)
		return nil
	}

	table := uc.console.CreateTable()
	table.AddColumn("ID")
	table.AddColumn("Cliente")
	for _, c := range clients {
		table.AddRow(c.ID, c.Name)
	}
	uc.console.Print(table.Render())
	return nil
}

// renderReport exibe cabeçalho, cartões de resumo, as sete seções do
// documento e as tabelas de estoque (somente tela).
func (uc *ReportUseCase) renderReport(doc *entity.ReportDocument, view *report.DerivedView) {
	header := fmt.Sprintf("%s  |  Período: %s", doc.Title, doc.Period)
	if doc.Unit != "" {
		header += fmt.Sprintf("  |  %s - %s", doc.Unit, doc.City)
	}
	uc.console.Printf("\n%s\n", pterm.FgCyan.Sprint(header))

	if view.Filters.Narrowing() {
		uc.console.LogInfo("Filtros ativos: cliente=%q, pagamento=%q",
			filterLabel(view.Filters.Client), filterLabel(view.Filters.Payment))
	}

	cards := make([]types.SummaryCard, len(doc.Cards))
	for i, c := range doc.Cards {
		cards[i] = types.SummaryCard{Label: c.Label, Value: c.Value}
	}
	uc.console.DisplaySummaryCards(cards)

	for _, sec := range doc.Sections {
		uc.renderSection(sec)
	}
	for _, sec := range report.StockSections(view.Aggregate) {
		uc.renderSection(sec)
	}
}

// renderEmptyReport exibe o estado vazio/fallback após falha de fetch.
func (uc *ReportUseCase) renderEmptyReport(rng report.Range, cfg *types.Config) {
	unit, city, preparedBy := "", "", ""
	if cfg != nil {
		unit, preparedBy = cfg.Unit, cfg.PreparedBy
	}
	meta := report.FallbackMetadata(rng, unit, city, preparedBy)
	empty := &entity.ReportAggregate{Metadata: meta}
	view := report.DeriveView(empty, report.Filters{})
	doc := report.BuildDocument(view, rng, time.Now())
	uc.renderReport(doc, view)
}

func (uc *ReportUseCase) renderSection(sec entity.DocumentSection) {
	uc.console.Printf("\n%s\n", pterm.NewStyle(pterm.FgLightCyan, pterm.Bold).Sprint(sec.Title))

	if len(sec.Rows) == 0 {
		uc.console.Println(pterm.FgGray.Sprint(sec.Empty))
		return
	}

	table := uc.console.CreateTable()
	for _, col := range sec.Columns {
		table.AddColumn(col)
	}
	for _, row := range sec.Rows {
		cells := make([]interface{}, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		table.AddRow(cells...)
	}
	if sec.Total != nil {
		cells := make([]interface{}, len(sec.Total))
		for i, cell := range sec.Total {
			cells[i] = pterm.NewStyle(pterm.Bold).Sprint(cell)
		}
		table.AddRow(cells...)
	}
	uc.console.Print(table.Render())
}

// exportReports gera os artefatos solicitados a partir do mesmo documento
// exibido na tela. Exportar sem relatório carregado é bloqueado antes de
// chegar aqui; falhas de ambiente (navegador, escrita) abortam o artefato
// com mensagem, sem produzir arquivo parcial.
func (uc *ReportUseCase) exportReports(doc *entity.ReportDocument, args *types.CLIArgs) {
	if !uc.session.Loaded() {
		uc.console.LogError("%s", types.ErrReportNotLoaded)
		return
	}

	name := args.ReportName
	if name == "" {
		name = DefaultReportName
	}

	for _, reportType := range args.ReportType {
		switch reportType {
		case "pdf":
			path, err := uc.exportRepo.ExportToPDF(doc, name, args.Dir)
			if err != nil {
				uc.console.LogError("Falha ao exportar PDF: %s", err)
			} else {
				uc.console.LogSuccess("PDF exportado: %s", path)
			}
		case "html", "print":
			path, err := uc.exportRepo.ExportPrintDocument(doc, name, args.Dir)
			if err != nil {
				uc.console.LogError("Falha ao gerar documento de impressão: %s", err)
				continue
			}
			uc.console.LogSuccess("Documento de impressão gerado: %s", path)
			if !args.NoOpen {
				if err := uc.exportRepo.OpenInBrowser(path); err != nil {
					uc.console.LogError("%s", err)
				}
			}
		case "xlsx":
			path, err := uc.exportRepo.ExportToXLSX(doc, name, args.Dir)
			if err != nil {
				uc.console.LogError("Falha ao exportar XLSX: %s", err)
			} else {
				uc.console.LogSuccess("XLSX exportado: %s", path)
			}
		case "csv":
			path, err := uc.exportRepo.ExportToCSV(doc, name, args.Dir)
			if err != nil {
				uc.console.LogError("Falha ao exportar CSV: %s", err)
			} else {
				uc.console.LogSuccess("CSV exportado: %s", path)
			}
		case "json":
			path, err := uc.exportRepo.ExportToJSON(doc, name, args.Dir)
			if err != nil {
				uc.console.LogError("Falha ao exportar JSON: %s", err)
			} else {
				uc.console.LogSuccess("JSON exportado: %s", path)
			}
		default:
			uc.console.LogWarning("Tipo de exportação desconhecido: %s", reportType)
		}
	}
}

func filterLabel(v string) string {
	if report.IsAll(v) {
		return report.FilterAll
	}
	return v
}
