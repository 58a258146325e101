package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for an assaymeta invocation.
// Values are populated from .assaymeta.yaml, ASSAYMETA_* env vars, and
// CLI flags.
type Config struct {
	OutputDir   string `mapstructure:"output_dir"`
	EnzymeCache string `mapstructure:"enzyme_cache"`
	RheaCache   string `mapstructure:"rhea_cache"`
	OntologyDir string `mapstructure:"ontology_dir"`
	RunDB       string `mapstructure:"run_db"`
	AuditFile   string `mapstructure:"audit_file"`
	Network     bool   `mapstructure:"network"`
	Pretty      bool   `mapstructure:"pretty"`
	Verbose     bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for
// any values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("output_dir", "data")
	viper.SetDefault("enzyme_cache", "enzyme_cache.json")
	viper.SetDefault("rhea_cache", "rhea_cache.json")
	viper.SetDefault("ontology_dir", "")
	viper.SetDefault("run_db", "assaymeta_runs.db")
	viper.SetDefault("audit_file", "")
	viper.SetDefault("network", false)
	viper.SetDefault("pretty", false)
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}
