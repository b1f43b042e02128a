// Package main provides the CLI entry point for paramtable-go.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/paramtable-go/pkg/paramtable"
	"github.com/ukaji3/paramtable-go/pkg/paramtable/expr"
	"github.com/ukaji3/paramtable-go/pkg/paramtable/sheet"
)

var (
	outputPath string
	pretty     bool
	rowIndex   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "paramtable",
		Short: "Build and query parameterized option tables",
		Long: `paramtable-go imports spreadsheets of options and parameters into an
editable table model and synthesizes per-column equation statements.`,
	}

	importCmd := &cobra.Command{
		Use:   "import [input.xlsx]",
		Short: "Import a spreadsheet and print the table snapshot as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runImport,
	}
	importCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	importCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	statementsCmd := &cobra.Command{
		Use:   "statements [snapshot.json]",
		Short: "Synthesize equation statements for one row of a saved table",
		Args:  cobra.ExactArgs(1),
		RunE:  runStatements,
	}
	statementsCmd.Flags().IntVar(&rowIndex, "row", -1, "Row to synthesize (default: the snapshot's selected row)")

	rootCmd.AddCommand(importCmd, statementsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	decoded, err := sheet.DecodeWorkbookFile(inputPath)
	if err != nil {
		return fmt.Errorf("decoding failed: %w", err)
	}

	engine, err := expr.NewCELEngine()
	if err != nil {
		return err
	}

	table := paramtable.New(engine, paramtable.DefaultOptions())
	if err := table.ImportSheet(decoded); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	snap, err := table.Snapshot()
	if err != nil {
		return fmt.Errorf("snapshot failed: %w", err)
	}

	jsonData, err := toJSON(snap, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	fmt.Println(string(jsonData))
	return nil
}

func runStatements(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap paramtable.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("invalid snapshot JSON: %w", err)
	}

	engine, err := expr.NewCELEngine()
	if err != nil {
		return err
	}

	table := paramtable.New(engine, paramtable.DefaultOptions())
	if err := table.Restore(&snap); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	table.ParseAll()

	if rowIndex >= 0 {
		if err := table.SelectRow(rowIndex); err != nil {
			return fmt.Errorf("row %d: %w", rowIndex, err)
		}
	}

	if table.HasParseError() {
		return fmt.Errorf("table holds unparsable expressions; nothing to synthesize")
	}

	for _, st := range table.Synthesize() {
		fmt.Println(st.Source())
	}
	return nil
}

func toJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
