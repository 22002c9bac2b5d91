package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile    string
	StartDate     string
	EndDate       string
	ClientFilter  string
	PaymentFilter string
	LocationID    string
	ReportName    string
	ReportType    []string
	Dir           string
	NoOpen        bool
	ListClients   bool
}
