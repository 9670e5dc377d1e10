package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/docmark/docmark/internal/scanner"
)

func newScanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <path>...",
		Short: "Scan files for docmark marker directives",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runScan,
	}
}

func runScan(cmd *cobra.Command, args []string) error {
	log := newLogger()

	files, err := collectGoFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no Go files found")
	}

	out := cmd.OutOrStdout()
	header := color.New(color.Bold)
	sc := &scanner.Scanner{Log: log}
	total := 0

	for _, file := range files {
		marks := sc.Scan(file)
		if len(marks) == 0 {
			continue
		}
		fmt.Fprintf(out, "\n%s:\n", header.Sprint(file))
		for _, m := range marks {
			extra := ""
			if m.Filename != "" {
				extra = fmt.Sprintf(" (filename=%s)", m.Filename)
			}
			fmt.Fprintf(out, "  Line %d: %s [%s]%s\n", m.Line, m.Name, m.Kind, extra)
			total++
		}
	}

	fmt.Fprintf(out, "\nTotal: %d marker(s) found.\n", total)
	return nil
}
