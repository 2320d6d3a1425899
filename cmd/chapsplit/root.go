package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/chapsplit/internal/config"
	"github.com/dgallion1/chapsplit/internal/pdfio"
	"github.com/dgallion1/chapsplit/internal/scanner"
	"github.com/dgallion1/chapsplit/internal/splitter"
)

var (
	flagSource  string
	flagOutDir  string
	flagPrefix  string
	flagExtract bool
)

var rootCmd = &cobra.Command{
	Use:   "chapsplit",
	Short: "Split a multi-chapter PDF into per-chapter files",
	Long: `chapsplit scans a PDF for "CHAPTER <n>" and "APPENDIX <letter>" title
pages, derives the page range of each one, and reports the ranges.
With --extract it also writes each range out as its own PDF.

Without --extract the run is a dry run: ranges are reported and no
files are created.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagSource, "source", "s", "", "source PDF path (or CHAPSPLIT_SOURCE)")
	rootCmd.Flags().StringVarP(&flagOutDir, "out", "o", "", "output directory (or CHAPSPLIT_OUT_DIR)")
	rootCmd.Flags().StringVar(&flagPrefix, "prefix", "", "output filename prefix (default: source basename)")
	rootCmd.Flags().BoolVarP(&flagExtract, "extract", "e", false, "write one PDF per detected range")
}

func run(cmd *cobra.Command, args []string) error {
	// Logs go to stderr; stdout is reserved for the range report.
	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	cfg := config.Load()
	if flagSource != "" {
		cfg.SourcePath = flagSource
	}
	if flagOutDir != "" {
		cfg.OutDir = flagOutDir
	}
	if flagPrefix != "" {
		cfg.Prefix = flagPrefix
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		return err
	}

	doc, err := pdfio.Open(cfg.SourcePath)
	if err != nil {
		log.Error("cannot open source PDF", "path", cfg.SourcePath, "error", err)
		return err
	}
	defer doc.Close()

	markers := scanner.Scan(doc, scanner.Config{
		StartScanPage: cfg.StartScanPage,
		HeadWindow:    cfg.HeadWindow,
		ShortPageLen:  cfg.ShortPageLen,
	}, log)
	if len(markers) == 0 {
		log.Error("no chapters found", "path", cfg.SourcePath)
		return fmt.Errorf("no chapters found in %s", cfg.SourcePath)
	}

	ranges := splitter.BuildRanges(markers, doc.PageCount())
	splitter.WriteReport(cmd.OutOrStdout(), ranges)

	if !flagExtract {
		fmt.Fprintln(cmd.OutOrStdout(), "Dry run - no files created. Rerun with --extract to write chapter PDFs.")
		return nil
	}

	if err := splitter.Extract(ranges, cfg.SourcePath, cfg.OutDir, cfg.OutputPrefix(), log); err != nil {
		log.Error("extraction failed", "error", err)
		return err
	}
	log.Info("extraction complete", "dir", cfg.OutDir, "files", len(ranges))
	return nil
}
