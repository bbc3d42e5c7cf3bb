package libraryfinder

import (
	"testing"

	"github.com/FabianGG03/Gestor-Biblioteca/internal/domain"
)

func TestLoadConfigAppliesOverrides(t *testing.T) {
	tmp := t.TempDir()
	writeConfig(t, tmp, `
biblioteca:
  paths:
    data_file: state.json
  loans:
    period_days: 7
    daily_fine: 1.25
  notify:
    delay_ms: 100
`)

	cfg, err := LoadConfig(tmp)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Paths.DataFile != "state.json" {
		t.Errorf("data file = %q, want state.json", cfg.Paths.DataFile)
	}
	if cfg.Loans.PeriodDays != 7 {
		t.Errorf("period days = %d, want 7", cfg.Loans.PeriodDays)
	}
	if cfg.Loans.DailyFine != 1.25 {
		t.Errorf("daily fine = %v, want 1.25", cfg.Loans.DailyFine)
	}
	if cfg.Notify.DelayMS != 100 {
		t.Errorf("delay MS = %d, want 100", cfg.Notify.DelayMS)
	}
}

func TestLoadConfigKeepsDefaultsForPartialFile(t *testing.T) {
	tmp := t.TempDir()
	writeConfig(t, tmp, `
biblioteca:
  loans:
    period_days: 30
`)

	cfg, err := LoadConfig(tmp)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	want := domain.DefaultConfig()
	if cfg.Loans.PeriodDays != 30 {
		t.Errorf("period days = %d, want 30", cfg.Loans.PeriodDays)
	}
	if cfg.Paths.DataFile != want.Paths.DataFile {
		t.Errorf("data file = %q, want default %q", cfg.Paths.DataFile, want.Paths.DataFile)
	}
	if cfg.Loans.DailyFine != want.Loans.DailyFine {
		t.Errorf("daily fine = %v, want default %v", cfg.Loans.DailyFine, want.Loans.DailyFine)
	}
}

func TestLoadConfigMissingFileReturnsDefaultsWithError(t *testing.T) {
	tmp := t.TempDir()

	cfg, err := LoadConfig(tmp)
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found kind, got: %v", err)
	}
	if cfg != domain.DefaultConfig() {
		t.Fatalf("expected defaults on missing file, got: %+v", cfg)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	tmp := t.TempDir()
	writeConfig(t, tmp, "biblioteca: [not a map\n")

	_, err := LoadConfig(tmp)
	if err == nil {
		t.Fatal("expected error for invalid yaml")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config kind, got: %v", err)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"zero period", "biblioteca:\n  loans:\n    period_days: 0\n"},
		{"negative fine", "biblioteca:\n  loans:\n    daily_fine: -0.5\n"},
		{"negative delay", "biblioteca:\n  notify:\n    delay_ms: -1\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tmp := t.TempDir()
			writeConfig(t, tmp, c.yaml)

			_, err := LoadConfig(tmp)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !domain.IsKind(err, domain.KindInvalidConfig) {
				t.Fatalf("expected invalid_config kind, got: %v", err)
			}
		})
	}
}
