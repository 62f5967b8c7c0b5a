package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Londondannyboy/thechief-quest/internal/seed"
)

func (a *app) seedCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the author, location, combination, agency and FAQ fixtures",
		Long: `Seed creates the baseline content: the editorial author, twenty location pages,
thirty location and industry combinations, three agencies and the FAQs.
Records whose slug already exists are skipped, so seeding can be re-run.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			backend, deps, err := a.backend(cmd.Context())
			if err != nil {
				return err
			}

			summary, err := seed.New(backend, deps.Logger, seed.WithDryRun(dryRun)).Run(cmd.Context())
			printSeedSummary(cmd, summary)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would be created without writing")
	return cmd
}

func printSeedSummary(cmd *cobra.Command, s seed.Summary) {
	w := cmd.OutOrStdout()

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Kind", "Slug", "Action"})
	for _, item := range s.Items {
		t.AppendRow(table.Row{item.Kind, item.Slug, item.Action})
	}
	t.Render()

	verb := "Created"
	if s.DryRun {
		verb = "Would create"
	}
	fmt.Fprintf(w, "%s: %d  Skipped: %d\n", verb, s.Created, s.Skipped)
}
