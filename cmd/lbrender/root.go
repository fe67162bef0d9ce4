package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sethierophant/longboard"
)

// renderWorkers caps how many input files are rendered at once.
const renderWorkers = 4

// NewRootCmd creates the root command for lbrender.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lbrender [file...]",
		Short: "Render imageboard post markup to sanitized HTML",
		Long: `lbrender renders post bodies written in imageboard markup to
sanitized HTML fragments.

With no arguments it reads one post body from stdin and writes the
fragment to stdout. With file arguments it renders each file into
<file>.html next to the source, processing files concurrently.

Examples:
  # Render a post from stdin
  lbrender < post.txt

  # Render files in place, applying word filters
  lbrender --filters filters.yml drafts/*.txt

Filter file (YAML) example:
  filter_rules:
    - pattern: "(?i)\\btbh\\b"
      replace_with: "desu"`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRender,
	}

	cmd.Flags().StringP("filters", "f", "", "YAML filter rule file applied before parsing")
	cmd.Flags().IntP("depth", "d", 0, "inline nesting depth cap (0 uses the default)")

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runRender executes the render command.
func runRender(cmd *cobra.Command, args []string) error {
	opts, err := renderOptions(cmd)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		text, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), longboard.RenderHTML(string(text), opts...))
		return err
	}

	g := new(errgroup.Group)
	g.SetLimit(renderWorkers)
	for _, path := range args {
		path := path
		g.Go(func() error {
			return renderFile(path, opts)
		})
	}
	return g.Wait()
}

// renderOptions builds parse options from the command flags.
func renderOptions(cmd *cobra.Command) ([]longboard.Option, error) {
	var opts []longboard.Option

	filtersPath, err := cmd.Flags().GetString("filters")
	if err != nil {
		return nil, err
	}
	if filtersPath != "" {
		rules, err := longboard.LoadFilters(filtersPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, longboard.WithFilters(rules...))
	}

	depth, err := cmd.Flags().GetInt("depth")
	if err != nil {
		return nil, err
	}
	if depth > 0 {
		opts = append(opts, longboard.WithMaxSpanDepth(depth))
	}

	return opts, nil
}

// renderFile renders one input file into <path>.html.
func renderFile(path string, opts []longboard.Option) error {
	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	out := path + ".html"
	fragment := longboard.RenderHTML(string(text), opts...)
	if err := os.WriteFile(out, []byte(fragment), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	return nil
}
