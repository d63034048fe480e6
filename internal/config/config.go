package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/statements-dev/statements/internal/classify"
)

// FileName is the project configuration file name.
const FileName = "statements.yaml"

// Config represents the top-level statements.yaml configuration.
type Config struct {
	Company    CompanyConfig    `yaml:"company"`
	Reporting  ReportingConfig  `yaml:"reporting"`
	Classifier ClassifierConfig `yaml:"classifier,omitempty"`
}

// CompanyConfig identifies the reporting entity. Used only for report
// headers.
type CompanyConfig struct {
	Name string `yaml:"name"`
}

// ReportingConfig carries the scalar report parameters.
type ReportingConfig struct {
	Period            string  `yaml:"period"`               // report header label, e.g. "2025"
	StartYear         int     `yaml:"start_year,omitempty"` // depreciation schedule start; 0 = current year
	IncomeTax         float64 `yaml:"income_tax"`           // manual amount, never derived
	RetainedBeginning float64 `yaml:"retained_beginning"`
}

// ClassifierConfig optionally overrides the classifier's account-name
// sets. Empty lists keep the defaults.
type ClassifierConfig struct {
	RevenueAccounts   []string `yaml:"revenue_accounts,omitempty"`
	COGSAccounts      []string `yaml:"cogs_accounts,omitempty"`
	OperatingAccounts []string `yaml:"operating_accounts,omitempty"`
}

// Load reads a statements.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(companyName, period string) *Config {
	return &Config{
		Company: CompanyConfig{
			Name: companyName,
		},
		Reporting: ReportingConfig{
			Period: period,
		},
	}
}

// Ruleset returns the classification rules with any configured name-set
// overrides applied on top of the defaults.
func (c *Config) Ruleset() *classify.Ruleset {
	rules := classify.DefaultRuleset()
	if len(c.Classifier.RevenueAccounts) > 0 {
		rules.RevenueAccounts = classify.NameSet(c.Classifier.RevenueAccounts...)
	}
	if len(c.Classifier.COGSAccounts) > 0 {
		rules.COGSAccounts = classify.NameSet(c.Classifier.COGSAccounts...)
	}
	if len(c.Classifier.OperatingAccounts) > 0 {
		rules.OperatingAccounts = classify.NameSet(c.Classifier.OperatingAccounts...)
	}
	return rules
}
