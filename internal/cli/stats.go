package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Londondannyboy/thechief-quest/internal/fallback"
	"github.com/Londondannyboy/thechief-quest/internal/stats"
)

func (a *app) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Collect the site statistics once and print them",
		RunE: func(cmd *cobra.Command, _ []string) error {
			backend, _, err := a.backend(cmd.Context())
			if err != nil {
				return err
			}

			s, err := stats.NewCollector(backend).Collect(cmd.Context())
			if err != nil {
				return fmt.Errorf("collect stats: %w", err)
			}

			avg := fallback.FormatSalary(s.AvgSalaryUK, "GBP")
			if avg == "" {
				avg = "-"
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Metric", "Value"})
			t.AppendRows([]table.Row{
				{"Active jobs", humanize.Comma(int64(s.TotalJobs))},
				{"Location pages", humanize.Comma(int64(s.TotalLocations))},
				{"Industry pages", humanize.Comma(int64(s.TotalIndustries))},
				{"Agencies", humanize.Comma(int64(s.TotalAgencies))},
				{"UK average salary", avg},
			})
			t.Render()
			return nil
		},
	}
}
