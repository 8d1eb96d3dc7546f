package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/catalystneuro/dandi-access-vis/internal/adapter/driven/config"
	"github.com/catalystneuro/dandi-access-vis/internal/adapter/driven/export"
	"github.com/catalystneuro/dandi-access-vis/internal/adapter/driven/reference"
	"github.com/catalystneuro/dandi-access-vis/internal/adapter/driven/summary"
	"github.com/catalystneuro/dandi-access-vis/internal/adapter/driving/cli"
	"github.com/catalystneuro/dandi-access-vis/internal/application/usecase"
	"github.com/catalystneuro/dandi-access-vis/internal/domain/entity"
	"github.com/catalystneuro/dandi-access-vis/pkg/console"
	"github.com/catalystneuro/dandi-access-vis/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	summaryRepo := summary.NewSummaryRepository()
	referenceRepo := reference.NewReferenceRepository(summaryRepo)
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Tabelas estáticas, montadas uma vez por processo
	visualizationUseCase := usecase.NewVisualizationUseCase(
		summaryRepo,
		referenceRepo,
		exportRepo,
		configRepo,
		consoleImpl,
		entity.DefaultVolumeScale(),
		entity.DefaultFeatureAlternates(),
	)

	app.SetVisualizationUseCase(visualizationUseCase)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Executa o aplicativo
	if err := app.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
