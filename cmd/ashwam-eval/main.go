// Command ashwam-eval scores machine-produced semantic extractions against
// gold annotations of journal entries.
//
// Usage:
//
//	ashwam-eval --data ./data --out ./out
//
// The data directory holds journals.jsonl, gold.jsonl, and predictions.jsonl.
// The output directory receives entry_scores.jsonl and summary.json, plus a
// workbook when --xlsx is set. Defaults can also come from ASHWAM_DATA and
// ASHWAM_OUT (a .env file in the working directory is honored).
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	ashwam "github.com/Nirmitk1311/ASHWAM"
	"github.com/Nirmitk1311/ASHWAM/eval"
	"github.com/Nirmitk1311/ASHWAM/helper"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	var (
		dataDir   string
		outDir    string
		predsFile string
		threshold float64
		keepPunct bool
		xlsx      bool
		verbose   bool
	)

	rootCmd := &cobra.Command{
		Use:   "ashwam-eval",
		Short: "Score predicted semantic extractions against gold annotations",
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(helper.NewPrettyHandler(os.Stderr, helper.PrettyHandlerOptions{
				SlogOpts: slog.HandlerOptions{Level: level},
			})))

			corpusCfg := eval.DefaultCorpusConfig(dataDir)
			if predsFile != "" {
				corpusCfg.PredictionsFile = predsFile
			}

			cfg := ashwam.DefaultConfig()
			cfg.JaccardThreshold = threshold
			cfg.StripPunctuation = !keepPunct

			return run(corpusCfg, cfg, outDir, xlsx)
		},
	}

	rootCmd.Flags().StringVar(&dataDir, "data", envOr("ASHWAM_DATA", "./data"), "data directory with journals.jsonl, gold.jsonl, predictions.jsonl")
	rootCmd.Flags().StringVar(&outDir, "out", envOr("ASHWAM_OUT", "./out"), "output directory for score files")
	rootCmd.Flags().StringVar(&predsFile, "predictions", "", "override path to the predictions JSONL file")
	rootCmd.Flags().Float64Var(&threshold, "threshold", ashwam.DefaultConfig().JaccardThreshold, "minimum Jaccard overlap for a match candidate")
	rootCmd.Flags().BoolVar(&keepPunct, "keep-punctuation", false, "keep token-edge punctuation when tokenizing spans")
	rootCmd.Flags().BoolVar(&xlsx, "xlsx", false, "also write report.xlsx to the output directory")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log per-entry scoring detail")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(corpusCfg eval.CorpusConfig, cfg ashwam.Config, outDir string, xlsx bool) error {
	entries, err := eval.LoadCorpus(corpusCfg)
	if err != nil {
		return err
	}
	slog.Info("corpus loaded", "entries", len(entries))

	evaluator, err := eval.NewEvaluator(cfg)
	if err != nil {
		return err
	}
	report, err := evaluator.Run(entries)
	if err != nil {
		return err
	}

	fmt.Print(eval.FormatReport(report))
	printHighlights(report)

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	scoresPath := filepath.Join(outDir, "entry_scores.jsonl")
	if err := eval.WriteEntryScores(report, scoresPath); err != nil {
		return err
	}
	summaryPath := filepath.Join(outDir, "summary.json")
	if err := eval.WriteSummary(report, summaryPath); err != nil {
		return err
	}
	slog.Info("reports written", "entry_scores", scoresPath, "summary", summaryPath)

	if xlsx {
		xlsxPath := filepath.Join(outDir, "report.xlsx")
		if err := eval.WriteXLSX(report, xlsxPath); err != nil {
			return err
		}
		slog.Info("workbook written", "path", xlsxPath)
	}
	return nil
}

// printHighlights prints the headline numbers with simple traffic-light
// coloring.
func printHighlights(r *eval.Report) {
	fmt.Printf("F1: %s  Evidence coverage: %s\n",
		colorRatio(r.F1), colorRatio(r.EvidenceCoverageRate))
}

func colorRatio(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	switch {
	case v >= 0.8:
		return color.GreenString(s)
	case v >= 0.5:
		return color.YellowString(s)
	default:
		return color.RedString(s)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
