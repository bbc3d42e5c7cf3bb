package libraryfinder

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/FabianGG03/Gestor-Biblioteca/internal/domain"
)

// LoadConfig loads biblioteca.yaml from the library root and applies
// its values on top of the defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, "biblioteca.yaml")
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "libraryfinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "libraryfinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Biblioteca.Paths.DataFile != "" {
		cfg.Paths.DataFile = y.Biblioteca.Paths.DataFile
	}
	if y.Biblioteca.Loans.PeriodDays != nil {
		cfg.Loans.PeriodDays = *y.Biblioteca.Loans.PeriodDays
	}
	if y.Biblioteca.Loans.DailyFine != nil {
		cfg.Loans.DailyFine = *y.Biblioteca.Loans.DailyFine
	}
	if y.Biblioteca.Notify.DelayMS != nil {
		cfg.Notify.DelayMS = *y.Biblioteca.Notify.DelayMS
	}

	if err := validate(cfg); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "libraryfinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return cfg, nil
}

func validate(cfg domain.Config) error {
	if cfg.Loans.PeriodDays <= 0 {
		return fmt.Errorf("loans.period_days must be positive, got %d: %w",
			cfg.Loans.PeriodDays, domain.ErrInvalidConfig)
	}
	if cfg.Loans.DailyFine < 0 {
		return fmt.Errorf("loans.daily_fine must not be negative, got %v: %w",
			cfg.Loans.DailyFine, domain.ErrInvalidConfig)
	}
	if cfg.Notify.DelayMS < 0 {
		return fmt.Errorf("notify.delay_ms must not be negative, got %d: %w",
			cfg.Notify.DelayMS, domain.ErrInvalidConfig)
	}
	return nil
}

type yamlConfig struct {
	Biblioteca struct {
		Paths struct {
			DataFile string `yaml:"data_file"`
		} `yaml:"paths"`

		Loans struct {
			PeriodDays *int     `yaml:"period_days"`
			DailyFine  *float64 `yaml:"daily_fine"`
		} `yaml:"loans"`

		Notify struct {
			DelayMS *int `yaml:"delay_ms"`
		} `yaml:"notify"`
	} `yaml:"biblioteca"`
}
