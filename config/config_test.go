package config

import "testing"

func validConfig() Config {
	return Config{
		Database: Database{Driver: DriverSQLite},
		Scoring:  Scoring{Mode: ScoringModeFlat, MissingAnswers: MissingAnswersReject},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "postgres weighted incorrect", mutate: func(c *Config) {
			c.Database.Driver = DriverPostgres
			c.Scoring.Mode = ScoringModeWeighted
			c.Scoring.MissingAnswers = MissingAnswersIncorrect
		}},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "mysql" }, wantErr: true},
		{name: "unknown scoring mode", mutate: func(c *Config) { c.Scoring.Mode = "curve" }, wantErr: true},
		{name: "unknown missing policy", mutate: func(c *Config) { c.Scoring.MissingAnswers = "pad" }, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "SQLITE")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Database.Driver != DriverSQLite {
		t.Errorf("driver = %q, want %q", cfg.Database.Driver, DriverSQLite)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Scoring.MissingAnswers != MissingAnswersReject {
		t.Errorf("missing answers = %q, want %q", cfg.Scoring.MissingAnswers, MissingAnswersReject)
	}
}
