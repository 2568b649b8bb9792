package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Variant names for the text-frequency pipeline.
const (
	VariantFull = "full" // embedded English stopwords + lemmatization + word cloud
	VariantLite = "lite" // small bundled function-word set, no normalization
)

// Global configuration structure.
type Global struct {
	Delimiter         string `mapstructure:"delimiter" yaml:"delimiter"`
	AnalysisVariant   string `mapstructure:"analysis_variant" yaml:"analysis_variant"`
	TopWords          int    `mapstructure:"top_words" yaml:"top_words"`
	MinWordLen        int    `mapstructure:"min_word_len" yaml:"min_word_len"`
	SampleRows        int    `mapstructure:"sample_rows" yaml:"sample_rows"`
	OutDir            string `mapstructure:"out_dir" yaml:"out_dir"`
	Charts            bool   `mapstructure:"charts" yaml:"charts"`
	WordCloudMaxWords int    `mapstructure:"wordcloud_max_words" yaml:"wordcloud_max_words"`
}

// ValidVariant reports whether v names a known pipeline variant.
func ValidVariant(v string) bool {
	return v == VariantFull || v == VariantLite
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.corpuseda/config.yaml, creating the directory
// if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".corpuseda")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("CORPUSEDA")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("delimiter", ";")
	v.SetDefault("analysis_variant", VariantFull)
	v.SetDefault("top_words", 20)
	v.SetDefault("min_word_len", 3)
	v.SetDefault("sample_rows", 5)
	v.SetDefault("out_dir", ".")
	v.SetDefault("charts", true)
	v.SetDefault("wordcloud_max_words", 100)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".corpuseda")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if !ValidVariant(c.AnalysisVariant) {
		return nil, fmt.Errorf("invalid analysis_variant: %q (use %s or %s)", c.AnalysisVariant, VariantFull, VariantLite)
	}
	return &c, nil
}
