package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"crmcols/internal/column"
	"crmcols/internal/picker"
	"crmcols/internal/prefs"
)

func newPrefsCmd(flags *rootFlags) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:     "prefs",
		Short:   "Read and write saved column selections",
		GroupID: "prefs",
	}
	cmd.PersistentFlags().StringVar(&user, "user", "", "user email (required)")
	_ = cmd.MarkPersistentFlagRequired("user")

	cmd.AddCommand(
		newPrefsGetCmd(flags, &user),
		newPrefsSaveCmd(flags, &user),
		newPrefsScopeCmd(flags, &user),
	)
	return cmd
}

func newPrefsGetCmd(flags *rootFlags, user *string) *cobra.Command {
	var (
		sample string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "get <entity> <sheet>",
		Short: "Show the selection a user sees",
		Long: `Show the saved selection for a sheet, resolving team sharing.

With --sample the selection is merged with the sample's columns: saved
columns are refreshed, stale ones reported, and defaults applied when
nothing usable is saved.

Examples:
  crmcols prefs get deals "Q3 Pipeline" --user ann@example.com
  crmcols prefs get deals "Q3 Pipeline" --user ann@example.com --sample deal.json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entity, err := column.ParseEntityType(args[0])
			if err != nil {
				return err
			}

			a, err := newApp(flags.appOptions(true))
			if err != nil {
				return err
			}
			defer a.Close()

			rec, err := a.store.Get(cmd.Context(), entity, args[1], *user)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if sample == "" {
				if asJSON {
					return writeJSON(out, rec)
				}
				fmt.Fprintf(out, "scope: %s\n", rec.Scope)
				writeSelection(out, rec.Columns)
				return nil
			}

			raw, err := readSample(sample, cmd.InOrStdin())
			if err != nil {
				return err
			}
			res := a.extractor.ExtractJSON(entity, raw, a.fieldNames(entity))
			p := picker.Build(res.Columns, rec.Columns, a.extractor.PrimaryFields(entity))

			if asJSON {
				return writeJSON(out, p)
			}
			fmt.Fprintf(out, "scope: %s\n", rec.Scope)
			if p.Defaulted {
				fmt.Fprintln(out, "(no saved selection, showing defaults)")
			}
			writeSelection(out, p.Selected)
			for _, d := range p.Diagnostics.All() {
				fmt.Fprintln(out, d.String())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sample, "sample", "", "sample record to merge the selection with")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}

func newPrefsSaveCmd(flags *rootFlags, user *string) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "save <entity> <sheet>",
		Short: "Replace a saved selection",
		Long: `Save replaces the selection in the user's effective scope.

The input is a JSON array of {key, name, customName, isNested, parentKey},
read from --file or stdin.

Examples:
  crmcols prefs save deals "Q3 Pipeline" --user ann@example.com --file cols.json
  echo '[{"key":"title","name":"Title"}]' | crmcols prefs save deals Q3 --user ann@example.com`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entity, err := column.ParseEntityType(args[0])
			if err != nil {
				return err
			}

			raw, err := readSelection(file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			sel, err := prefs.Decode(raw)
			if err != nil {
				return err
			}

			a, err := newApp(flags.appOptions(true))
			if err != nil {
				return err
			}
			defer a.Close()

			rec, err := a.store.Save(cmd.Context(), entity, args[1], *user, sel)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "SAVED %d columns to %s\n", len(rec.Columns), rec.Scope)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "selection JSON file (stdin when empty)")

	return cmd
}

func newPrefsScopeCmd(flags *rootFlags, user *string) *cobra.Command {
	return &cobra.Command{
		Use:   "scope",
		Short: "Show whether a user's selections are personal or shared",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags.appOptions(true))
			if err != nil {
				return err
			}
			defer a.Close()

			scope, err := a.store.Scope(cmd.Context(), *user)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), scope.String())
			return nil
		},
	}
}

func readSelection(file string, stdin io.Reader) ([]byte, error) {
	if file == "" || file == "-" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		if len(raw) == 0 {
			return nil, errors.New("no selection given on stdin")
		}
		return raw, nil
	}
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read selection %s: %w", file, err)
	}
	return raw, nil
}

func writeSelection(w io.Writer, sel column.Selection) {
	if len(sel) == 0 {
		fmt.Fprintln(w, "(empty)")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tKEY\tLABEL")
	for i, c := range sel {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, c.Key, c.Label())
	}
	tw.Flush()
}
