package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper() {
	viper.Reset()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"OutputDir", cfg.OutputDir, "data"},
		{"EnzymeCache", cfg.EnzymeCache, "enzyme_cache.json"},
		{"RheaCache", cfg.RheaCache, "rhea_cache.json"},
		{"OntologyDir", cfg.OntologyDir, ""},
		{"RunDB", cfg.RunDB, "assaymeta_runs.db"},
		{"AuditFile", cfg.AuditFile, ""},
		{"Network", cfg.Network, false},
		{"Pretty", cfg.Pretty, false},
		{"Verbose", cfg.Verbose, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{
			name:   "output_dir",
			envKey: "ASSAYMETA_OUTPUT_DIR",
			envVal: "/tmp/assay-out",
			field:  func(c Config) any { return c.OutputDir },
			want:   "/tmp/assay-out",
		},
		{
			name:   "enzyme_cache",
			envKey: "ASSAYMETA_ENZYME_CACHE",
			envVal: "/var/cache/enzyme.json",
			field:  func(c Config) any { return c.EnzymeCache },
			want:   "/var/cache/enzyme.json",
		},
		{
			name:   "rhea_cache",
			envKey: "ASSAYMETA_RHEA_CACHE",
			envVal: "/var/cache/rhea.json",
			field:  func(c Config) any { return c.RheaCache },
			want:   "/var/cache/rhea.json",
		},
		{
			name:   "ontology_dir",
			envKey: "ASSAYMETA_ONTOLOGY_DIR",
			envVal: "/data/ontologies",
			field:  func(c Config) any { return c.OntologyDir },
			want:   "/data/ontologies",
		},
		{
			name:   "network",
			envKey: "ASSAYMETA_NETWORK",
			envVal: "true",
			field:  func(c Config) any { return c.Network },
			want:   true,
		},
		{
			name:   "verbose",
			envKey: "ASSAYMETA_VERBOSE",
			envVal: "true",
			field:  func(c Config) any { return c.Verbose },
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			// Set env prefix so ASSAYMETA_* env vars map to config keys.
			viper.SetEnvPrefix("ASSAYMETA")
			viper.AutomaticEnv()

			os.Setenv(tt.envKey, tt.envVal)
			defer os.Unsetenv(tt.envKey)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			got := tt.field(cfg)
			if got != tt.want {
				t.Errorf("%s: got %v (%T), want %v (%T)", tt.name, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestLoad_ConfigFileValues(t *testing.T) {
	resetViper()

	viper.Set("output_dir", "build/out")
	viper.Set("pretty", true)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.OutputDir != "build/out" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "build/out")
	}
	if !cfg.Pretty {
		t.Error("Pretty should be true")
	}
	// Unset keys keep their defaults.
	if cfg.RunDB != "assaymeta_runs.db" {
		t.Errorf("RunDB = %q, want default", cfg.RunDB)
	}
}
