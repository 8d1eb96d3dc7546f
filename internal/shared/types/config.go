package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	DataPath       string   `json:"data_path" yaml:"data_path" toml:"data_path"`
	Dandisets      []string `json:"dandisets" yaml:"dandisets" toml:"dandisets"`
	CountryMapping string   `json:"country_mapping" yaml:"country_mapping" toml:"country_mapping"`
	Features       string   `json:"features" yaml:"features" toml:"features"`
	OutputDir      string   `json:"output_dir" yaml:"output_dir" toml:"output_dir"`
	LogScale       bool     `json:"log_scale" yaml:"log_scale" toml:"log_scale"`
	TopN           int      `json:"top_n" yaml:"top_n" toml:"top_n"`
	ExportData     []string `json:"export_data" yaml:"export_data" toml:"export_data"`
}
