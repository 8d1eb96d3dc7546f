package cli

import (
	"fmt"

	"github.com/catalystneuro/dandi-access-vis/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         /$$$$$$$   /$$$$$$  /$$   /$$ /$$$$$$$  /$$$$$$
        | $$__  $$ /$$__  $$| $$$ | $$| $$__  $$|_  $$_/
        | $$  \ $$| $$  \ $$| $$$$| $$| $$  \ $$  | $$
        | $$  | $$| $$$$$$$$| $$ $$ $$| $$  | $$  | $$
        | $$  | $$| $$__  $$| $$  $$$$| $$  | $$  | $$
        | $$  | $$| $$  | $$| $$\  $$$| $$  | $$  | $$
        | $$$$$$$/| $$  | $$| $$ \  $$| $$$$$$$/ /$$$$$$
        |_______/ |__/  |__/|__/  \__/|_______/ |______/
        `
	magenta := color.New(color.FgMagenta, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(magenta(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("DANDI Access Visualizer (v%s)", formattedVersion)))
}

// checkLatestVersion verifica se uma versão mais recente está disponível.
func checkLatestVersion(currentVersion string) {
	version.CheckLatestVersion(currentVersion)
}
