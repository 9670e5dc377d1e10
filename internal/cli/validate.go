package cli

import (
	"fmt"
	"go/parser"
	"go/token"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/docmark/docmark/internal/scanner"
	"github.com/docmark/docmark/pkg/docs"
)

func newValidateCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate <path>...",
		Short: "Validate documentation coverage for marked declarations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error code when documentation is missing")
	return cmd
}

func runValidate(cmd *cobra.Command, args []string, strict bool) error {
	log := newLogger()

	files, err := collectGoFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no Go files found")
	}

	store := docs.NewStore(newResolver(log), log)
	sc := &scanner.Scanner{Log: log}

	var missing []docs.Entry
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			abs = file
		}
		pkg := packageName(abs)
		for _, m := range sc.Scan(abs) {
			entity := &docs.Entity{Name: m.Name, Package: pkg, File: abs}
			if _, err := store.Retrieve(entity, m.Filename); err != nil {
				missing = append(missing, docs.Entry{Entity: entity, Filename: m.Filename})
			}
		}
	}

	out := cmd.OutOrStdout()
	if len(missing) == 0 {
		fmt.Fprintln(out, color.GreenString("All marked declarations have documentation."))
		return nil
	}

	errOut := cmd.ErrOrStderr()
	fmt.Fprintln(errOut, "Missing documentation files:")
	for _, entry := range missing {
		extra := ""
		if entry.Filename != "" {
			extra = fmt.Sprintf(" (expected: %s)", entry.Filename)
		}
		fmt.Fprintf(errOut, "  - %s%s\n", entry.Entity.QualifiedName(), extra)
	}
	fmt.Fprintf(errOut, "\nTotal: %d declaration(s) missing documentation.\n", len(missing))

	if strict {
		return fmt.Errorf("%d declaration(s) missing documentation", len(missing))
	}
	return nil
}

// packageName reads just the package clause; "" when the file cannot be
// parsed.
func packageName(path string) string {
	file, err := parser.ParseFile(token.NewFileSet(), path, nil, parser.PackageClauseOnly)
	if err != nil || file.Name == nil {
		return ""
	}
	return file.Name.Name
}
