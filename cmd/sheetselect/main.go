// Package main provides the CLI entry point for sheetselect.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/clipboard"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/command"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/output"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/workbook"
)

var (
	outputPath    string
	pretty        bool
	sheetName     string
	pageSize      int
	tuiPageSize   int
	noHeader      bool
	noPlaceholder bool
	copyTSV       bool
	selectionOnly bool
	commands      []string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetselect",
		Short: "Select cells, rows and columns of Excel sheets",
		Long: `sheetselect loads a sheet from an Excel file and applies selection
commands to it, either from a script or interactively.`,
		SilenceUsage: true,
	}

	selectCmd := &cobra.Command{
		Use:   "select [input.xlsx]",
		Short: "Apply selection commands and print the result as JSON",
		Long: `select applies each --cmd in order and prints the resulting selection.

Commands: all, first, none, up, down, left, right, tab, shift+tab,
shift+up, shift+down, shift+left, shift+right, cell <A1>, range <A1:B2>,
cells <A1>..., rows <r1> [r2], cols <c1> [c2], draw <A1>, drawrow <r>, drawcol <c>,
page <n|next|prev>, sort [col] [asc|desc], hide <col>, show <col>.`,
		Args: cobra.ExactArgs(1),
		RunE: runSelect,
	}
	selectCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	selectCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	selectCmd.Flags().BoolVar(&selectionOnly, "selection-only", false, "Print only the selection, without grid and commands")
	selectCmd.Flags().BoolVar(&copyTSV, "copy", false, "Copy the selection to the system clipboard as TSV")
	selectCmd.Flags().StringArrayVarP(&commands, "cmd", "c", nil, "Selection command (repeatable)")

	tuiCmd := &cobra.Command{
		Use:   "tui [input.xlsx]",
		Short: "Browse a sheet and select cells interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  runTUI,
	}

	addLoadFlags(selectCmd.Flags())
	addLoadFlags(tuiCmd.Flags())
	selectCmd.Flags().IntVar(&pageSize, "page-size", 0, "Data rows per page (0: no paging)")
	tuiCmd.Flags().IntVar(&tuiPageSize, "page-size", 20, "Data rows per page (0: no paging)")

	rootCmd.AddCommand(selectCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addLoadFlags registers the workbook loading flags shared by all subcommands.
func addLoadFlags(fs *pflag.FlagSet) {
	fs.StringVar(&sheetName, "sheet", "", "Sheet to load (default: first sheet)")
	fs.BoolVar(&noHeader, "no-header", false, "Treat the first used row as data")
	fs.BoolVar(&noPlaceholder, "no-placeholder", false, "Do not add the placeholder row below the data")
}

func loadOptions(pageSize int) workbook.Options {
	opts := workbook.DefaultOptions()
	opts.Sheet = sheetName
	opts.PageSize = pageSize
	if noHeader {
		useHeader := false
		opts.HeaderRow = &useHeader
	}
	if noPlaceholder {
		addPlaceholder := false
		opts.Placeholder = &addPlaceholder
	}
	return opts
}

func openSession(inputPath string, pageSize int) (*command.Session, error) {
	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", inputPath)
	}

	g, err := workbook.Load(inputPath, loadOptions(pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to load workbook: %w", err)
	}
	return command.NewSession(g)
}

func runSelect(cmd *cobra.Command, args []string) error {
	session, err := openSession(args[0], pageSize)
	if err != nil {
		return err
	}

	if err := session.Run(commands); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	report, err := session.Report()
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	if copyTSV {
		if !clipboard.SystemAvailable() {
			return fmt.Errorf("--copy: no system clipboard available")
		}
		if err := clipboard.WriteSystem(report.TSV); err != nil {
			return fmt.Errorf("failed to copy selection: %w", err)
		}
	}

	// Serialize to JSON
	var jsonData []byte
	if selectionOnly {
		jsonData, err = output.SelectionToJSON(&report.Selection, pretty)
	} else {
		jsonData, err = output.ToJSON(report, pretty)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	// Write output
	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}
