package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Londondannyboy/thechief-quest/internal/sitemap"
)

func (a *app) sitemapCommand() *cobra.Command {
	var asXML bool

	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Print the sitemap entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			backend, deps, err := a.backend(cmd.Context())
			if err != nil {
				return err
			}

			now := time.Now()
			entries, err := sitemap.NewBuilder(backend, deps.Config.Service.BaseURL).Build(cmd.Context(), now)
			if err != nil {
				return fmt.Errorf("build sitemap: %w", err)
			}

			w := cmd.OutOrStdout()
			if asXML {
				return sitemap.WriteXML(w, entries)
			}

			t := table.NewWriter()
			t.SetOutputMirror(w)
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"URL", "Change", "Priority", "Modified"})
			for _, e := range entries {
				t.AppendRow(table.Row{e.Loc, e.ChangeFreq, fmt.Sprintf("%.1f", e.Priority), humanize.RelTime(e.LastModified, now, "ago", "from now")})
			}
			t.AppendFooter(table.Row{"", "", "Total", len(entries)})
			t.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&asXML, "xml", false, "write sitemaps.org XML instead of a table")
	return cmd
}
