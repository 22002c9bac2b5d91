package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	APIURL     string   `json:"api_url" yaml:"api_url" toml:"api_url"`
	APIToken   string   `json:"api_token" yaml:"api_token" toml:"api_token"`
	LocationID string   `json:"location_id" yaml:"location_id" toml:"location_id"`
	Unit       string   `json:"unit" yaml:"unit" toml:"unit"`
	PreparedBy string   `json:"prepared_by" yaml:"prepared_by" toml:"prepared_by"`
	ReportName string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string   `json:"dir" yaml:"dir" toml:"dir"`
}
