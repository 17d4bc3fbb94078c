// Package main provides the CLI entry point for clusterdata.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/clusterdata-go/pkg/clusterdata"
	"github.com/ukaji3/clusterdata-go/pkg/clusterdata/models"
	"github.com/ukaji3/clusterdata-go/pkg/clusterdata/output"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := clusterdata.DefaultConfig()
	var (
		mode    string
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:   "clusterdata",
		Short: "Generate toy datasets for clustering algorithms",
		Long: `clusterdata generates the Blobs, Moons and Circles datasets, writes each
one to its own sheet of an Excel workbook and renders them side by side
as scatter plots.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			writeMode, err := clusterdata.ParseWriteMode(mode)
			if err != nil {
				return err
			}
			cfg.Mode = writeMode
			setupLogging(cmd.ErrOrStderr(), verbose)
			return runGenerate(cmd, cfg)
		},
	}

	flags := rootCmd.Flags()
	flags.IntVar(&cfg.Samples, "samples", cfg.Samples, "Number of points per dataset")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed")
	flags.IntVar(&cfg.BlobCenters, "blob-centers", cfg.BlobCenters, "Number of Gaussian clusters in Blobs")
	flags.Float64Var(&cfg.MoonsNoise, "moons-noise", cfg.MoonsNoise, "Noise standard deviation for Moons")
	flags.Float64Var(&cfg.CirclesNoise, "circles-noise", cfg.CirclesNoise, "Noise standard deviation for Circles")
	flags.Float64Var(&cfg.CirclesFactor, "circles-factor", cfg.CirclesFactor, "Inner circle radius relative to the outer one")
	flags.StringVar(&cfg.WorkbookPath, "workbook", cfg.WorkbookPath, "Output workbook path")
	flags.StringVar(&cfg.ImagePath, "image", cfg.ImagePath, "Output figure path (format from extension)")
	flags.StringVar(&cfg.HTMLPath, "html", "", "Also write an interactive HTML chart page")
	flags.StringVar(&mode, "mode", string(cfg.Mode), "Workbook write mode: create, append, or auto")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")

	rootCmd.AddCommand(newInspectCmd())
	return rootCmd
}

// setupLogging routes the standard logger to w when verbose, and discards it otherwise.
func setupLogging(w io.Writer, verbose bool) {
	log.SetPrefix("clusterdata: ")
	if verbose {
		log.SetOutput(w)
		return
	}
	log.SetOutput(io.Discard)
}

func runGenerate(cmd *cobra.Command, cfg clusterdata.Config) error {
	res, err := clusterdata.Run(cfg)
	if err != nil {
		if errors.Is(err, clusterdata.ErrSheetExists) {
			fmt.Fprintf(cmd.ErrOrStderr(), "hint: %s already holds dataset sheets; delete it or rerun with --mode create\n", cfg.WorkbookPath)
		}
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Data saved to %s\n", res.WorkbookPath)
	fmt.Fprintf(out, "Visualization of data: %s\n", res.ImagePath)
	if res.HTMLPath != "" {
		fmt.Fprintf(out, "Interactive chart: %s\n", res.HTMLPath)
	}
	return nil
}

func newInspectCmd() *cobra.Command {
	var (
		outputPath string
		pretty     bool
		sheetsDir  string
	)

	cmd := &cobra.Command{
		Use:   "inspect [workbook.xlsx]",
		Short: "Summarize the sheets of a dataset workbook as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]

			// Validate input file exists
			if _, err := os.Stat(inputPath); os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", inputPath)
			}

			summary, err := clusterdata.Inspect(inputPath)
			if err != nil {
				return fmt.Errorf("inspection failed: %w", err)
			}

			jsonData, err := output.ToJSON(summary, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			} else if sheetsDir == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
			}

			if sheetsDir != "" {
				if err := writeSheetFiles(summary, sheetsDir, pretty); err != nil {
					return fmt.Errorf("failed to write sheet files: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	return cmd
}

func writeSheetFiles(wb *models.WorkbookSummary, dir string, pretty bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for i := range wb.Sheets {
		jsonData, err := output.SheetToJSON(&wb.Sheets[i], pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, wb.Sheets[i].Name+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}
