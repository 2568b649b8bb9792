package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/medtextlab/corpuseda/internal/config"
	"github.com/medtextlab/corpuseda/internal/dataset"
	"github.com/medtextlab/corpuseda/internal/render"
	"github.com/medtextlab/corpuseda/internal/report"
	"github.com/medtextlab/corpuseda/internal/stats"
	"github.com/medtextlab/corpuseda/internal/textfreq"
)

var (
	profVariant    string
	profDelimiter  string
	profTop        int
	profMinWordLen int
	profSampleRows int
	profOutDir     string
	profNoCharts   bool
)

var profileCmd = &cobra.Command{
	Use:   "profile <file>",
	Short: "Run the full exploratory analysis over a dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		variant := cfg.AnalysisVariant
		if cmd.Flags().Changed("variant") {
			variant = profVariant
		}
		if !cfgpkg.ValidVariant(variant) {
			return fmt.Errorf("invalid --variant: %q (use %s or %s)", variant, cfgpkg.VariantFull, cfgpkg.VariantLite)
		}
		delimStr := cfg.Delimiter
		if cmd.Flags().Changed("delimiter") {
			delimStr = profDelimiter
		}
		delim, err := parseDelimiter(delimStr)
		if err != nil {
			return err
		}
		topWords := cfg.TopWords
		if profTop > 0 {
			topWords = profTop
		}
		minWordLen := cfg.MinWordLen
		if profMinWordLen > 0 {
			minWordLen = profMinWordLen
		}
		sampleRows := cfg.SampleRows
		if profSampleRows > 0 {
			sampleRows = profSampleRows
		}
		outDir := cfg.OutDir
		if profOutDir != "" {
			outDir = profOutDir
		}
		charts := cfg.Charts
		if profNoCharts {
			charts = false
		}

		// Strictly linear: load, summarize, frequency pipeline,
		// render, report.
		ds, err := dataset.Load(path, delim)
		if err != nil {
			return err
		}
		sum := stats.Summarize(ds)

		pipeOpt := textfreq.DefaultOptions()
		if variant == cfgpkg.VariantLite {
			pipeOpt = textfreq.LiteOptions()
		}
		pipeOpt.MinTokenLen = minWordLen
		res := textfreq.Analyze(ds.Corpus(), pipeOpt)

		var artifacts []string
		if charts {
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("%w: create output dir: %v", render.ErrRender, err)
			}
			chartPath, err := render.Charts(ds, sum, outDir)
			if err != nil {
				return err
			}
			artifacts = append(artifacts, chartPath)
			if variant == cfgpkg.VariantFull {
				cloudPath, err := render.WordCloud(res.Filtered.Top(cfg.WordCloudMaxWords), outDir)
				if err != nil {
					return err
				}
				artifacts = append(artifacts, cloudPath)
			}
		}

		a := report.New(cmd.OutOrStdout())
		a.SampleRows = sampleRows
		a.TopWords = topWords
		a.Header(ds.Name)
		a.DatasetOverview(ds, sum)
		a.TextColumns(sum)
		a.Categoricals(sum)
		a.Identifiers(sum)
		a.Frequencies(res)
		a.StatisticalSummary(sum)
		a.Overview(sum)
		a.Footer(artifacts)

		if debug {
			fmt.Fprintf(os.Stderr, "✓ Run %s finished (variant=%s, stopwords=%d)\n",
				a.RunID, variant, pipeOpt.Stopwords.Len())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.Flags().StringVar(&profVariant, "variant", "", "pipeline variant: 'full' | 'lite' (default from config)")
	profileCmd.Flags().StringVar(&profDelimiter, "delimiter", "", "field delimiter: ';' | ',' | 'tab'")
	profileCmd.Flags().IntVar(&profTop, "top", 0, "number of top words to report (default from config)")
	profileCmd.Flags().IntVar(&profMinWordLen, "min-word-len", 0, "minimum token length for the filtered table")
	profileCmd.Flags().IntVar(&profSampleRows, "sample-rows", 0, "number of sample rows to print")
	profileCmd.Flags().StringVarP(&profOutDir, "out-dir", "o", "", "directory for image artifacts (default working directory)")
	profileCmd.Flags().BoolVar(&profNoCharts, "no-charts", false, "skip chart and word-cloud rendering")
}
