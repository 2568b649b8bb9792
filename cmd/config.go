package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/medtextlab/corpuseda/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set corpuseda configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("delimiter: %s\n", cfg.Delimiter)
		fmt.Printf("analysis_variant: %s\n", cfg.AnalysisVariant)
		fmt.Printf("top_words: %d\n", cfg.TopWords)
		fmt.Printf("min_word_len: %d\n", cfg.MinWordLen)
		fmt.Printf("sample_rows: %d\n", cfg.SampleRows)
		fmt.Printf("out_dir: %s\n", cfg.OutDir)
		fmt.Printf("charts: %t\n", cfg.Charts)
		fmt.Printf("wordcloud_max_words: %d\n", cfg.WordCloudMaxWords)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "delimiter":
			if _, err := parseDelimiter(val); err != nil {
				return err
			}
			cfg.Delimiter = val
		case "analysis_variant":
			if !cfgpkg.ValidVariant(val) {
				return fmt.Errorf("invalid analysis_variant: %s (use %s or %s)", val, cfgpkg.VariantFull, cfgpkg.VariantLite)
			}
			cfg.AnalysisVariant = val
		case "top_words":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for top_words: %v", val)
			}
			cfg.TopWords = i
		case "min_word_len":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for min_word_len: %v", val)
			}
			cfg.MinWordLen = i
		case "sample_rows":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for sample_rows: %v", val)
			}
			cfg.SampleRows = i
		case "out_dir":
			cfg.OutDir = val
		case "charts":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for charts: %v", val)
			}
			cfg.Charts = b
		case "wordcloud_max_words":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for wordcloud_max_words: %v", val)
			}
			cfg.WordCloudMaxWords = i
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Saved %s\n", key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
