package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	cfgpkg "github.com/medtextlab/corpuseda/internal/config"
	"github.com/medtextlab/corpuseda/internal/dataset"
	"github.com/medtextlab/corpuseda/internal/render"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "corpuseda",
	Short: "corpuseda: exploratory analysis for delimited article datasets",
	Long: `corpuseda profiles a semicolon-delimited dataset of article records
(pmid, title, abstract, source, group, Manual): it prints descriptive
statistics, runs a word-frequency pipeline over titles and abstracts,
and renders chart and word-cloud images.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load .env file if present (ignore errors)
		_ = godotenv.Load()
	},
}

// Exit codes distinguish the failure kinds a caller can react to.
const (
	exitGeneric = 1
	exitInput   = 2
	exitSchema  = 3
	exitRender  = 4
)

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, dataset.ErrNotFound):
		return exitInput
	case errors.Is(err, dataset.ErrSchema):
		return exitSchema
	case errors.Is(err, render.ErrRender):
		return exitRender
	}
	return exitGeneric
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.corpuseda/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults so commands still run
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		cfg = &cfgpkg.Global{
			Delimiter:         ";",
			AnalysisVariant:   cfgpkg.VariantFull,
			TopWords:          20,
			MinWordLen:        3,
			SampleRows:        5,
			OutDir:            ".",
			Charts:            true,
			WordCloudMaxWords: 100,
		}
		return
	}
	cfg = c
}

// parseDelimiter maps a flag/config spelling to a field separator rune.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "", ";":
		return ';', nil
	case ",":
		return ',', nil
	case "\t", "tab":
		return '\t', nil
	default:
		return 0, fmt.Errorf("unsupported delimiter: %q (use ';' | ',' | 'tab')", s)
	}
}
