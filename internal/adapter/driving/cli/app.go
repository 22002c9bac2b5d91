package cli

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gasdistrib/relatorio-dashboard-go/internal/application/usecase"
	"github.com/gasdistrib/relatorio-dashboard-go/internal/domain/repository"
	"github.com/gasdistrib/relatorio-dashboard-go/internal/shared/types"
	"github.com/gasdistrib/relatorio-dashboard-go/pkg/version"
)

// EndpointConfigurer permite redefinir o endpoint do backend depois que o
// arquivo de configuração foi carregado.
type EndpointConfigurer interface {
	Configure(baseURL, token string)
}

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd       *cobra.Command
	reportUseCase *usecase.ReportUseCase
	configRepo    repository.ConfigRepository
	endpoint      EndpointConfigurer
	version       string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "relatorio",
		Short:   "Relatório Detalhado CLI",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Relatório Detalhado version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("start", "s", "", "Start date of the period (YYYY-MM-DD); defaults to the current month")
	rootCmd.PersistentFlags().StringP("end", "e", "", "End date of the period (YYYY-MM-DD); swapped silently if inverted")
	rootCmd.PersistentFlags().StringP("client", "c", "Todos", "Client filter (partial name; 'Todos' disables)")
	rootCmd.PersistentFlags().StringP("payment", "p", "Todos", "Payment method filter (exact; 'Todos' disables)")
	rootCmd.PersistentFlags().StringP("location", "l", "", "Location/unit identifier sent to the backend")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Base name for exported files (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", nil, "Export types: pdf, html, xlsx, csv, json")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save exported files (default: current directory)")
	rootCmd.PersistentFlags().Bool("no-open", false, "Do not open the print document in the browser")
	rootCmd.PersistentFlags().Bool("list-clients", false, "List the client directory used by the client filter")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.PersistentFlags().GetString("config-file")
	startDate, _ := app.rootCmd.PersistentFlags().GetString("start")
	endDate, _ := app.rootCmd.PersistentFlags().GetString("end")
	clientFilter, _ := app.rootCmd.PersistentFlags().GetString("client")
	paymentFilter, _ := app.rootCmd.PersistentFlags().GetString("payment")
	locationID, _ := app.rootCmd.PersistentFlags().GetString("location")
	reportName, _ := app.rootCmd.PersistentFlags().GetString("report-name")
	reportType, _ := app.rootCmd.PersistentFlags().GetStringSlice("report-type")
	dir, _ := app.rootCmd.PersistentFlags().GetString("dir")
	noOpen, _ := app.rootCmd.PersistentFlags().GetBool("no-open")
	listClients, _ := app.rootCmd.PersistentFlags().GetBool("list-clients")

	// Dir vazio fica vazio: o exportador resolve para o diretório corrente,
	// e o arquivo de configuração ainda pode preenchê-lo.
	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile:    configFile,
		StartDate:     startDate,
		EndDate:       endDate,
		ClientFilter:  clientFilter,
		PaymentFilter: paymentFilter,
		LocationID:    locationID,
		ReportName:    reportName,
		ReportType:    reportType,
		Dir:           dir,
		NoOpen:        noOpen,
		ListClients:   listClients,
	}

	return args, nil
}

// mergeConfig aplica valores do arquivo de configuração onde a linha de
// comando não definiu nada.
func mergeConfig(args *types.CLIArgs, cfg *types.Config) {
	if cfg == nil {
		return
	}
	if args.LocationID == "" {
		args.LocationID = cfg.LocationID
	}
	if args.ReportName == "" {
		args.ReportName = cfg.ReportName
	}
	if len(args.ReportType) == 0 {
		args.ReportType = cfg.ReportType
	}
	if cfg.Dir != "" && args.Dir == "" {
		args.Dir = cfg.Dir
	}
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, cmdArgs []string) error {
	displayWelcomeBanner(app.version)

	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	var cfg *types.Config
	if cliArgs.ConfigFile != "" && app.configRepo != nil {
		cfg, err = app.configRepo.LoadConfigFile(cliArgs.ConfigFile)
		if err != nil {
			return err
		}
		mergeConfig(cliArgs, cfg)
		if app.endpoint != nil {
			app.endpoint.Configure(cfg.APIURL, cfg.APIToken)
		}
	}

	ctx := context.Background()
	return app.reportUseCase.RunReport(ctx, cliArgs, cfg)
}

// SetReportUseCase sets the report use case for the CLI app.
func (app *CLIApp) SetReportUseCase(useCase *usecase.ReportUseCase) {
	app.reportUseCase = useCase
}

// SetConfigRepository sets the config repository for the CLI app.
func (app *CLIApp) SetConfigRepository(repo repository.ConfigRepository) {
	app.configRepo = repo
}

// SetEndpointConfigurer sets the backend endpoint configurer.
func (app *CLIApp) SetEndpointConfigurer(c EndpointConfigurer) {
	app.endpoint = c
}
