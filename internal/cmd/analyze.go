package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sumantkashyav/Log-Analysis-Script/internal/aggregator"
	"github.com/sumantkashyav/Log-Analysis-Script/internal/config"
	"github.com/sumantkashyav/Log-Analysis-Script/internal/logging"
	"github.com/sumantkashyav/Log-Analysis-Script/internal/model"
	"github.com/sumantkashyav/Log-Analysis-Script/internal/parser"
	"github.com/sumantkashyav/Log-Analysis-Script/internal/reader"
	"github.com/sumantkashyav/Log-Analysis-Script/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze log files and write a report",
	Long: `Analyze reads every .log and .txt file directly under the input directory,
parses the lines, and writes aggregate reports to the output directory.
Malformed lines are counted, never fatal.

Examples:
  loganalysis analyze --input data/ --output results/
  loganalysis analyze -i /var/log/app -f text -e UserID -t 10`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	logging.Setup(cfg.LogFile)

	summary, err := analyze(cfg)
	if err != nil {
		return err
	}

	if !cfg.Quiet {
		report.Display(os.Stdout, summary)
	}
	return nil
}

// analyze runs the full pipeline: reader → parser → aggregator → writer.
// It is a pure function of (input directory, cfg) to (output directory
// contents) plus the returned summary.
func analyze(cfg config.Config) (model.Summary, error) {
	r := reader.New(cfg.Input, cfg.Recursive)

	files, err := r.Files()
	if err != nil {
		return model.Summary{}, err
	}
	if len(files) == 0 {
		// Not fatal: the run still completes and produces an empty report.
		log.Printf("no .log or .txt files found under %s", cfg.Input)
	}

	p := parser.New()
	agg := aggregator.New(cfg.EntityKeys, cfg.Threshold)
	agg.SetFiles(len(files))

	err = r.Lines(func(line model.RawLine) error {
		rec, fail := p.Parse(line.Text, line.Source, line.Number)
		if fail != nil {
			agg.AddFailure(fail)
			return nil
		}
		agg.Add(rec)
		return nil
	})
	if err != nil {
		return model.Summary{}, err
	}

	summary := agg.Summary()

	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return model.Summary{}, err
	}
	if err := report.NewWriter(cfg.Output, format).Write(summary); err != nil {
		return model.Summary{}, err
	}

	return summary, nil
}
