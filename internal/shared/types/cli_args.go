package types

// CLIArgs represents the command-line arguments shared by every chart command.
type CLIArgs struct {
	ConfigFile     string
	DataPath       string
	Dandisets      []string
	CountryMapping string
	Features       string
	Output         string
	LogScale       bool
	TopN           int
	ExportData     []string
}
