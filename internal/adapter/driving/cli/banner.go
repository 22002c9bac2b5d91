package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/gasdistrib/relatorio-dashboard-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         ____      _       _             _         ____       _        _ _               _
        |  _ \ ___| | __ _| |_ ___  _ __(_) ___   |  _ \  ___| |_ __ _| | |__   __ _  __| | ___
        | |_) / _ \ |/ _' | __/ _ \| '__| |/ _ \  | | | |/ _ \ __/ _' | | '_ \ / _' |/ _' |/ _ \
        |  _ <  __/ | (_| | || (_) | |  | | (_) | | |_| |  __/ || (_| | | | | | (_| | (_| | (_) |
        |_| \_\___|_|\__,_|\__\___/|_|  |_|\___/  |____/ \___|\__\__,_|_|_| |_|\__,_|\__,_|\___/
        `
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()

	fmt.Println(blue(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(cyan(fmt.Sprintf("Relatório Detalhado CLI (v%s)", formattedVersion)))
}
