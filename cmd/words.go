package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	cfgpkg "github.com/medtextlab/corpuseda/internal/config"
	"github.com/medtextlab/corpuseda/internal/dataset"
	"github.com/medtextlab/corpuseda/internal/textfreq"
)

var (
	wordsVariant   string
	wordsDelimiter string
	wordsTop       int
	wordsRawOnly   bool
)

var wordsCmd = &cobra.Command{
	Use:   "words <file>",
	Short: "Print the raw and filtered top-word tables only",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		variant := cfg.AnalysisVariant
		if cmd.Flags().Changed("variant") {
			variant = wordsVariant
		}
		if !cfgpkg.ValidVariant(variant) {
			return fmt.Errorf("invalid --variant: %q (use %s or %s)", variant, cfgpkg.VariantFull, cfgpkg.VariantLite)
		}
		delimStr := cfg.Delimiter
		if cmd.Flags().Changed("delimiter") {
			delimStr = wordsDelimiter
		}
		delim, err := parseDelimiter(delimStr)
		if err != nil {
			return err
		}
		top := cfg.TopWords
		if wordsTop > 0 {
			top = wordsTop
		}

		ds, err := dataset.Load(args[0], delim)
		if err != nil {
			return err
		}

		pipeOpt := textfreq.DefaultOptions()
		if variant == cfgpkg.VariantLite {
			pipeOpt = textfreq.LiteOptions()
		}
		pipeOpt.MinTokenLen = cfg.MinWordLen
		res := textfreq.Analyze(ds.Corpus(), pipeOpt)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Most common words (top %d):\n", top)
		for _, e := range res.Raw.Top(top) {
			fmt.Fprintf(out, "  %s: %d\n", e.Token, e.Count)
		}
		if !wordsRawOnly {
			fmt.Fprintf(out, "\nMost common meaningful words (top %d):\n", top)
			for _, e := range res.Filtered.Top(top) {
				fmt.Fprintf(out, "  %s: %d\n", e.Token, e.Count)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(wordsCmd)
	wordsCmd.Flags().StringVar(&wordsVariant, "variant", "", "pipeline variant: 'full' | 'lite' (default from config)")
	wordsCmd.Flags().StringVar(&wordsDelimiter, "delimiter", "", "field delimiter: ';' | ',' | 'tab'")
	wordsCmd.Flags().IntVar(&wordsTop, "top", 0, "number of top words to report")
	wordsCmd.Flags().BoolVar(&wordsRawOnly, "raw-only", false, "skip the filtered table")
}
