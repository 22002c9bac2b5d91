package main

import (
	"fmt"
	"os"

	"github.com/gasdistrib/relatorio-dashboard-go/internal/adapter/driven/api"
	"github.com/gasdistrib/relatorio-dashboard-go/internal/adapter/driven/config"
	"github.com/gasdistrib/relatorio-dashboard-go/internal/adapter/driven/export"
	"github.com/gasdistrib/relatorio-dashboard-go/internal/adapter/driving/cli"
	"github.com/gasdistrib/relatorio-dashboard-go/internal/application/usecase"
	"github.com/gasdistrib/relatorio-dashboard-go/pkg/console"
	"github.com/gasdistrib/relatorio-dashboard-go/pkg/version"
)

// defaultAPIURL pode ser sobrescrito pelo arquivo de configuração
// (api_url/api_token) via --config-file.
var defaultAPIURL = "http://localhost:3001/api"

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	reportRepo := api.NewReportRepository(defaultAPIURL, "")
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	reportUseCase := usecase.NewReportUseCase(
		reportRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	// Define o caso de uso no aplicativo CLI
	app.SetReportUseCase(reportUseCase)
	app.SetConfigRepository(configRepo)
	app.SetEndpointConfigurer(reportRepo)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
