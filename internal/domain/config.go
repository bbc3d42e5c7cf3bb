package domain

// Config represents the minimal configuration loaded from biblioteca.yaml.
type Config struct {
	Paths  PathsConfig
	Loans  LoansConfig
	Notify NotifyConfig
}

type PathsConfig struct {
	DataFile string
}

type LoansConfig struct {
	// PeriodDays is the loan period; the due date is loan date + PeriodDays.
	PeriodDays int

	// DailyFine is the fee charged per day once a loan is overdue.
	DailyFine float64
}

type NotifyConfig struct {
	// DelayMS is the simulated delivery delay of the console notifier.
	DelayMS int
}

// DefaultConfig provides sane defaults if biblioteca.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{DataFile: "biblioteca.json"},
		Loans: LoansConfig{
			PeriodDays: 14,
			DailyFine:  0.50,
		},
		Notify: NotifyConfig{DelayMS: 2000},
	}
}
