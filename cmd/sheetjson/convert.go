package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/aerissecure/sheetjson"
	"github.com/spf13/cobra"
)

var (
	convertOutput string
	convertIndent bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a workbook to JSON",
	Long: `Convert an XLSX workbook into its JSON document.

The document is written to stdout unless --output is given. When the
workbook cannot be read an {"error": ...} document is written instead and
the command exits with status 1.

Examples:
  sheetjson convert report.xlsx
  sheetjson convert report.xlsx -o report.json --indent`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Write the document to this file")
	convertCmd.Flags().BoolVar(&convertIndent, "indent", false, "Pretty-print the document")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading workbook: %w", err)
	}

	opts := sheetjson.Options{
		EmptyStreak: cfg.Convert.EmptyStreak,
		Workers:     cfg.Convert.Workers,
		Indent:      convertIndent,
		Logger:      log.WithField("file", args[0]),
	}
	doc, convErr := sheetjson.XlsxToJSON(bytes.NewReader(data), int64(len(data)), opts)
	if convErr != nil {
		log.WithError(convErr).WithField("file", args[0]).Error("conversion failed")
		doc = sheetjson.ErrorJSON(convErr)
	}

	if err := writeOutput(cmd.OutOrStdout(), convertOutput, doc); err != nil {
		return err
	}

	if convErr != nil {
		return &ExitError{Code: 1}
	}
	return nil
}

// writeOutput writes doc to path, or to stdout when path is empty. A file
// that fails to flush on close is reported as a write failure.
func writeOutput(stdout io.Writer, path, doc string) error {
	if path == "" {
		if _, err := fmt.Fprintln(stdout, doc); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if _, err := fmt.Fprintln(f, doc); err != nil {
		f.Close()
		return fmt.Errorf("writing output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}
	return nil
}
