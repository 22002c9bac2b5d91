package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gasdistrib/relatorio-dashboard-go/internal/domain/entity"
	"github.com/gasdistrib/relatorio-dashboard-go/internal/shared/types"
)

// fakeConsole acumula tudo o que foi exibido, por severidade.
type fakeConsole struct {
	output   strings.Builder
	errors   []string
	warnings []string
	success  []string
	cards    []types.SummaryCard
}

func (c *fakeConsole) Print(a ...interface{})                 { fmt.Fprint(&c.output, a...) }
func (c *fakeConsole) Printf(f string, a ...interface{})      { fmt.Fprintf(&c.output, f, a...) }
func (c *fakeConsole) Println(a ...interface{})               { fmt.Fprintln(&c.output, a...) }
func (c *fakeConsole) LogInfo(f string, a ...interface{})     { fmt.Fprintf(&c.output, f, a...) }
func (c *fakeConsole) LogWarning(f string, a ...interface{})  { c.warnings = append(c.warnings, fmt.Sprintf(f, a...)) }
func (c *fakeConsole) LogError(f string, a ...interface{})    { c.errors = append(c.errors, fmt.Sprintf(f, a...)) }
func (c *fakeConsole) LogSuccess(f string, a ...interface{})  { c.success = append(c.success, fmt.Sprintf(f, a...)) }
func (c *fakeConsole) Status(message string) types.StatusHandle { return fakeStatus{} }
func (c *fakeConsole) CreateTable() types.TableInterface      { return &fakeTable{out: &c.output} }
func (c *fakeConsole) DisplaySummaryCards(cards []types.SummaryCard) {
	c.cards = append(c.cards, cards...)
}

type fakeStatus struct{}

func (fakeStatus) Update(string) {}
func (fakeStatus) Stop()         {}

type fakeTable struct {
	out  *strings.Builder
	rows [][]interface{}
}

func (t *fakeTable) AddColumn(name string, options ...interface{}) {}
func (t *fakeTable) AddRow(cells ...interface{})                   { t.rows = append(t.rows, cells) }
func (t *fakeTable) Render() string {
	var b strings.Builder
	for _, row := range t.rows {
		fmt.Fprintln(&b, row...)
	}
	return b.String()
}

// fakeExportRepo registra os formatos pedidos sem tocar no disco.
type fakeExportRepo struct {
	exported []string
	opened   []string
}

func (f *fakeExportRepo) ExportToPDF(doc *entity.ReportDocument, name, dir string) (string, error) {
	f.exported = append(f.exported, "pdf")
	return "/tmp/" + name + ".pdf", nil
}

func (f *fakeExportRepo) ExportToXLSX(doc *entity.ReportDocument, name, dir string) (string, error) {
	f.exported = append(f.exported, "xlsx")
	return "/tmp/" + name + ".xlsx", nil
}

func (f *fakeExportRepo) ExportToCSV(doc *entity.ReportDocument, name, dir string) (string, error) {
	f.exported = append(f.exported, "csv")
	return "/tmp/" + name + ".csv", nil
}

func (f *fakeExportRepo) ExportToJSON(doc *entity.ReportDocument, name, dir string) (string, error) {
	f.exported = append(f.exported, "json")
	return "/tmp/" + name + ".json", nil
}

func (f *fakeExportRepo) ExportPrintDocument(doc *entity.ReportDocument, name, dir string) (string, error) {
	f.exported = append(f.exported, "html")
	return "/tmp/" + name + ".html", nil
}

func (f *fakeExportRepo) OpenInBrowser(path string) error {
	f.opened = append(f.opened, path)
	return nil
}

func newTestUseCase(reportRepo *fakeReportRepo) (*ReportUseCase, *fakeConsole, *fakeExportRepo) {
	console := &fakeConsole{}
	exportRepo := &fakeExportRepo{}
	uc := NewReportUseCase(reportRepo, exportRepo, nil, console)
	return uc, console, exportRepo
}

func TestRunReportHappyPathExports(t *testing.T) {
	repo := &fakeReportRepo{results: []fakeResult{{agg: sessionAggregate("100.00")}}}
	uc, console, exportRepo := newTestUseCase(repo)

	args := &types.CLIArgs{
		StartDate:     "2025-03-01",
		EndDate:       "2025-03-31",
		ClientFilter:  "Todos",
		PaymentFilter: "Todos",
		ReportType:    []string{"pdf", "html", "csv"},
		NoOpen:        true,
	}
	require.NoError(t, uc.RunReport(context.Background(), args, nil))

	assert.Empty(t, console.errors)
	assert.Equal(t, []string{"pdf", "html", "csv"}, exportRepo.exported)
	// Com --no-open o navegador não é acionado.
	assert.Empty(t, exportRepo.opened)

	require.Len(t, console.cards, 6)
	assert.Equal(t, "Total Bruto", console.cards[0].Label)
	assert.Equal(t, "R$ 100,00", console.cards[0].Value)
	assert.Contains(t, console.output.String(), "Mercearia Central")
}

func TestRunReportOpensPrintDocument(t *testing.T) {
	repo := &fakeReportRepo{results: []fakeResult{{agg: sessionAggregate("100.00")}}}
	uc, _, exportRepo := newTestUseCase(repo)

	args := &types.CLIArgs{
		StartDate:  "2025-03-01",
		EndDate:    "2025-03-31",
		ReportType: []string{"html"},
	}
	require.NoError(t, uc.RunReport(context.Background(), args, nil))
	require.Len(t, exportRepo.opened, 1)
	assert.True(t, strings.HasSuffix(exportRepo.opened[0], ".html"))
}

func TestRunReportFetchFailureBlocksExport(t *testing.T) {
	repo := &fakeReportRepo{results: []fakeResult{{err: errors.New("conexão recusada")}}}
	uc, console, exportRepo := newTestUseCase(repo)

	args := &types.CLIArgs{
		StartDate:  "2025-03-01",
		EndDate:    "2025-03-31",
		ReportType: []string{"pdf"},
	}

	// Erros de fetch são locais: o processo segue com o estado vazio.
	require.NoError(t, uc.RunReport(context.Background(), args, nil))

	require.NotEmpty(t, console.errors)
	assert.Contains(t, console.errors[0], "conexão recusada")

	require.NotEmpty(t, console.warnings)
	assert.Contains(t, console.warnings[0], "Exportação desabilitada")
	assert.Empty(t, exportRepo.exported)

	// As tabelas degradam para vazio, não somem.
	assert.Contains(t, console.output.String(), "Nenhum registro no período")
	assert.False(t, uc.Session().Loaded())
}

func TestRunReportInvalidDateLogsAndStops(t *testing.T) {
	repo := &fakeReportRepo{}
	uc, console, exportRepo := newTestUseCase(repo)

	args := &types.CLIArgs{StartDate: "ontem", EndDate: "2025-03-31"}
	require.NoError(t, uc.RunReport(context.Background(), args, nil))

	require.NotEmpty(t, console.errors)
	assert.Empty(t, exportRepo.exported)
	assert.Equal(t, 0, repo.calls)
}

func TestRunReportUnknownExportType(t *testing.T) {
	repo := &fakeReportRepo{results: []fakeResult{{agg: sessionAggregate("100.00")}}}
	uc, console, exportRepo := newTestUseCase(repo)

	args := &types.CLIArgs{
		StartDate:  "2025-03-01",
		EndDate:    "2025-03-31",
		ReportType: []string{"docx"},
	}
	require.NoError(t, uc.RunReport(context.Background(), args, nil))

	require.NotEmpty(t, console.warnings)
	assert.Contains(t, console.warnings[0], "docx")
	assert.Empty(t, exportRepo.exported)
}

func TestRunListClients(t *testing.T) {
	repo := &fakeReportRepo{clients: []entity.Client{
		{ID: "1", Name: "Mercearia Central"},
		{ID: "2", Name: "Padaria do Zé"},
	}}
	uc, console, _ := newTestUseCase(repo)

	args := &types.CLIArgs{ListClients: true}
	require.NoError(t, uc.RunReport(context.Background(), args, nil))

	out := console.output.String()
	assert.Contains(t, out, "Mercearia Central")
	assert.Contains(t, out, "Padaria do Zé")
}
