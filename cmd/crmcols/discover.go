package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"crmcols/internal/column"
	"crmcols/internal/discover"
)

func newDiscoverCmd(flags *rootFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "discover <entity> <sample.json>...",
		Short: "List the columns of sample records",
		Long: `Discover walks each sample record and prints its ordered columns.

Examples:
  crmcols discover deals deal.json
  crmcols discover persons p1.json p2.json --json
  crmcols discover organizations - < org.json   # read the sample from stdin`,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entity, err := column.ParseEntityType(args[0])
			if err != nil {
				return err
			}

			a, err := newApp(flags.appOptions(false))
			if err != nil {
				return err
			}
			defer a.Close()

			results, err := extractAll(cmd.Context(), a, entity, args[1:], cmd.InOrStdin())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, results)
			}
			for i, res := range results {
				if len(results) > 1 {
					fmt.Fprintf(out, "== %s ==\n", args[1+i])
				}
				writeColumns(out, res)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")

	return cmd
}

// extractAll reads and extracts every sample concurrently and returns the
// results in argument order.
func extractAll(ctx context.Context, a *app, entity column.EntityType, paths []string, stdin io.Reader) ([]discover.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	results := make([]discover.Result, len(paths))
	fields := a.fieldNames(entity)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			raw, err := readSample(path, stdin)
			if err != nil {
				return err
			}
			results[i] = a.extractor.ExtractJSON(entity, raw, fields)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func readSample(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sample %s: %w", path, err)
	}
	return raw, nil
}

func writeColumns(w io.Writer, res discover.Result) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tNAME\tPARENT\tACCESS")
	for _, c := range res.Columns {
		access := "editable"
		if c.ReadOnly {
			access = "read-only"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Key, c.Name, c.ParentKey, access)
	}
	tw.Flush()

	if res.Fallback {
		fmt.Fprintln(w, "(fallback columns: the sample could not be read)")
	}
	for _, d := range res.Diagnostics.All() {
		fmt.Fprintln(w, d.String())
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
