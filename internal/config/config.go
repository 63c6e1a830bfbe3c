package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	GrammarPath string `toml:"grammar_path"`
	SamplesPath string `toml:"samples_path"`
	Pattern     string `toml:"pattern"`
	LedgerPath  string `toml:"ledger_path"`
	HistoryPath string `toml:"history_path"`
	Watch       Watch  `toml:"watch"`
}

type Watch struct {
	Debounce time.Duration `toml:"debounce"`
}

func Default() *Config {
	return &Config{
		GrammarPath: "realtest.lark",
		SamplesPath: "samples",
		Pattern:     "*.rts",
		Watch:       Watch{Debounce: 500 * time.Millisecond},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, err
	}

	// Default debounce if the config zeroed it
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = 500 * time.Millisecond
	}

	return cfg, nil
}

// ResolveLedgerPath fills in the default ledger location: data.json in the
// parent of the samples directory, so repeated runs from different working
// directories land on the same file.
func (c *Config) ResolveLedgerPath() {
	if c.LedgerPath != "" {
		return
	}
	c.LedgerPath = filepath.Join(filepath.Dir(filepath.Clean(c.SamplesPath)), "data.json")
}
