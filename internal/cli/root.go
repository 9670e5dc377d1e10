// Package cli provides the docmark command-line interface.
package cli

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docmark/docmark/internal/logutil"
	"github.com/docmark/docmark/pkg/docs"
)

var rootOpts struct {
	verbosity int
	quiet     bool
	root      string
}

// Execute creates and runs the root command.
func Execute() error {
	rootCmd := &cobra.Command{
		Use:           "docmark",
		Short:         "Externalized Markdown documentation tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&rootOpts.verbosity, "verbose", "v", "Increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().BoolVarP(&rootOpts.quiet, "quiet", "q", false, "Suppress log output")
	rootCmd.PersistentFlags().StringVar(&rootOpts.root, "root", "", "Documentation root directory (default: discovered from the installed module location)")

	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newValidateCommand())

	return rootCmd.Execute()
}

func newLogger() *slog.Logger {
	return logutil.New(os.Stderr, logutil.LevelFromVerbosity(rootOpts.verbosity, rootOpts.quiet))
}

func newResolver(log *slog.Logger) *docs.Resolver {
	return &docs.Resolver{Root: rootOpts.root, Log: log}
}

// collectGoFiles expands path arguments into the Go files to process: file
// arguments must be .go files, directory arguments are walked recursively.
// Vendor trees are skipped.
func collectGoFiles(paths []string) ([]string, error) {
	var files []string
	for _, arg := range paths {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if strings.HasSuffix(arg, ".go") {
				files = append(files, arg)
			}
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() && d.Name() == "vendor" {
				return filepath.SkipDir
			}
			if !d.IsDir() && strings.HasSuffix(path, ".go") {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}
