package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/docmark/docmark/internal/stubgen"
)

type generateOptions struct {
	configPath  string
	templateDir string
	include     []string
	exclude     []string
	dryRun      bool
}

func newGenerateCommand() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate <path>...",
		Short: "Generate documentation stub files for marked declarations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Show what would be created without creating files")
	cmd.Flags().StringVar(&opts.templateDir, "template-dir", "", "Directory containing custom template .md files (type.md, function.md, ...)")
	cmd.Flags().StringArrayVar(&opts.exclude, "exclude", nil, "Glob pattern for files to exclude (repeatable)")
	cmd.Flags().StringArrayVar(&opts.include, "include", nil, "Glob pattern for files to include (repeatable); when given, only matching files are processed")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to a .docmark.yml or docmark.toml config file")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string, opts generateOptions) error {
	log := newLogger()

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	include := mergePatterns(opts.include, cfg.Include)
	exclude := mergePatterns(opts.exclude, cfg.Exclude)
	templateDir := opts.templateDir
	if templateDir == "" {
		templateDir = cfg.TemplateDir
	}

	files, err := collectGoFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no Go files found to process")
	}

	gen := stubgen.New(newResolver(log), log)
	genOpts := stubgen.Options{
		TemplateDir: templateDir,
		Include:     include,
		Exclude:     exclude,
		DryRun:      opts.dryRun,
	}

	action := "Created"
	if opts.dryRun {
		action = "Would create"
	}

	out := cmd.OutOrStdout()
	created := color.New(color.FgGreen)
	totalCreated := 0
	totalSkipped := 0

	for _, file := range files {
		targets, err := gen.Generate(file, genOpts)
		if err != nil {
			return fmt.Errorf("processing %s: %w", file, err)
		}
		if len(targets) == 0 {
			if len(include) > 0 || len(exclude) > 0 {
				totalSkipped++
			}
			continue
		}
		for _, target := range targets {
			fmt.Fprintf(out, "%s: %s\n", created.Sprint(action), target)
			totalCreated++
		}
	}

	if totalCreated == 0 {
		fmt.Fprintln(out, "No new documentation stubs needed.")
	} else if opts.dryRun {
		fmt.Fprintf(out, "\nTotal: %d stub(s) would be created.\n", totalCreated)
	} else {
		fmt.Fprintf(out, "\nTotal: %d stub(s) created.\n", totalCreated)
	}
	if totalSkipped > 0 {
		fmt.Fprintf(out, "Skipped: %d file(s) due to exclude/include patterns.\n", totalSkipped)
	}
	return nil
}
