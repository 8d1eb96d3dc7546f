package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/catalystneuro/dandi-access-vis/pkg/version"

	"github.com/catalystneuro/dandi-access-vis/internal/adapter/driven/summary"
	"github.com/catalystneuro/dandi-access-vis/internal/application/usecase"
	"github.com/catalystneuro/dandi-access-vis/internal/shared/types"
	"github.com/spf13/cobra"
)

// Valores padrão das flags compartilhadas.
const (
	DefaultDataPath       = "../access-summaries/content"
	DefaultCountryMapping = "country_mapping.json"
	DefaultFeatures       = "ne_50m_admin_0_countries.geojson"
	DefaultTopN           = 10
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd              *cobra.Command
	visualizationUseCase *usecase.VisualizationUseCase
	version              string
	quiet                bool
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:           "dandi-access-vis",
		Short:         "DANDI Access Visualizer",
		Long:          "Aggregate DANDI access summaries and render download maps and charts as SVG and PDF.",
		Version:       formattedVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{printf "DANDI Access Vis version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("data-path", "d", DefaultDataPath, "Path or s3://bucket/prefix URL of the access summaries content")
	rootCmd.PersistentFlags().StringSlice("dandiset", nil, "Specific dandiset IDs to include (comma-separated)")
	rootCmd.PersistentFlags().String("country-mapping", DefaultCountryMapping, "Country code to name mapping (JSON, YAML, or TOML)")
	rootCmd.PersistentFlags().String("features", DefaultFeatures, "Natural Earth admin-0 countries GeoJSON (download ne_50m_admin_0_countries.geojson; choropleth writes nothing without it)")
	rootCmd.PersistentFlags().StringSlice("export-data", nil, "Also export the aggregated table: csv, json")
	rootCmd.PersistentFlags().BoolVarP(&app.quiet, "quiet", "q", false, "Do not display the welcome banner")

	choropleth := &cobra.Command{
		Use:   "choropleth",
		Short: "Country choropleth map of download volume",
		RunE:  app.runWith(usecase.DefaultChoroplethOutput, app.runChoropleth),
	}
	choropleth.Flags().StringP("output", "o", usecase.DefaultChoroplethOutput, "Output file, .svg or .png (a PDF is written next to it)")
	choropleth.Flags().BoolP("log-scale", "l", false, "Use a logarithmic colour scale")

	scatter := &cobra.Command{
		Use:   "scatter",
		Short: "Scatter map of download volume by region",
		RunE:  app.runWith(usecase.DefaultScatterOutput, app.runScatter),
	}
	scatter.Flags().StringP("output", "o", usecase.DefaultScatterOutput, "Output file, .svg or .png (a PDF is written next to it)")

	temporal := &cobra.Command{
		Use:   "temporal",
		Short: "Cumulative downloads over time by dandiset",
		RunE:  app.runWith(usecase.DefaultTemporalOutput, app.runTemporal),
	}
	temporal.Flags().StringP("output", "o", usecase.DefaultTemporalOutput, "Output file, .svg or .png (a PDF is written next to it)")
	temporal.Flags().IntP("top-n", "n", DefaultTopN, "Number of top dandisets to show individually")

	rootCmd.AddCommand(choropleth, scatter, temporal)

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// ExecuteContext runs the CLI application; ctx reaches every repository call.
func (app *CLIApp) ExecuteContext(ctx context.Context) error {
	return app.rootCmd.ExecuteContext(ctx)
}

// SetArgs substitui os argumentos da linha de comando (usado em testes).
func (app *CLIApp) SetArgs(args []string) {
	app.rootCmd.SetArgs(args)
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	flags := cmd.Flags()
	configFile, _ := flags.GetString("config-file")
	dataPath, _ := flags.GetString("data-path")
	dandisets, _ := flags.GetStringSlice("dandiset")
	countryMapping, _ := flags.GetString("country-mapping")
	features, _ := flags.GetString("features")
	exportData, _ := flags.GetStringSlice("export-data")
	output, _ := flags.GetString("output")
	// Flags específicas de um subcomando não existem nos demais.
	logScale, _ := flags.GetBool("log-scale")
	topN, err := flags.GetInt("top-n")
	if err != nil {
		topN = DefaultTopN
	}
	if topN < 0 {
		return nil, fmt.Errorf("--top-n must not be negative, got %d", topN)
	}

	args := &types.CLIArgs{
		ConfigFile:     configFile,
		DataPath:       dataPath,
		Dandisets:      usecase.ParseDandisetList(dandisets),
		CountryMapping: countryMapping,
		Features:       features,
		Output:         output,
		LogScale:       logScale,
		TopN:           topN,
		ExportData:     exportData,
	}

	return args, nil
}

// runWith monta o RunE comum: banner, argumentos, arquivo de configuração e
// então o comando em si.
func (app *CLIApp) runWith(defaultOutput string, run func(ctx context.Context, args *types.CLIArgs) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if !app.quiet {
			displayWelcomeBanner(app.version)
			go checkLatestVersion(app.version)
		}

		if app.visualizationUseCase == nil {
			return fmt.Errorf("visualization use case not configured")
		}

		cliArgs, err := parseArgs(cmd)
		if err != nil {
			return err
		}

		// Flags passadas explicitamente têm precedência sobre o arquivo.
		if err := app.visualizationUseCase.ApplyConfigFile(cliArgs, cmd.Flags().Changed); err != nil {
			return fmt.Errorf("error loading config file: %w", err)
		}

		if !summary.IsS3Root(cliArgs.DataPath) {
			absPath, err := filepath.Abs(cliArgs.DataPath)
			if err != nil {
				return err
			}
			cliArgs.DataPath = absPath
		}
		if cliArgs.Output == "" {
			cliArgs.Output = defaultOutput
		}

		return run(cmd.Context(), cliArgs)
	}
}

func (app *CLIApp) runChoropleth(ctx context.Context, args *types.CLIArgs) error {
	return app.visualizationUseCase.RunChoropleth(ctx, args)
}

func (app *CLIApp) runScatter(ctx context.Context, args *types.CLIArgs) error {
	return app.visualizationUseCase.RunScatter(ctx, args)
}

func (app *CLIApp) runTemporal(ctx context.Context, args *types.CLIArgs) error {
	return app.visualizationUseCase.RunTemporal(ctx, args)
}

// SetVisualizationUseCase sets the use case behind every subcommand.
func (app *CLIApp) SetVisualizationUseCase(useCase *usecase.VisualizationUseCase) {
	app.visualizationUseCase = useCase
}
