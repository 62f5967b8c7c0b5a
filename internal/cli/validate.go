package cli

import (
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Londondannyboy/thechief-quest/internal/content"
	"github.com/Londondannyboy/thechief-quest/internal/schema"
)

// ErrViolations is returned when any record breaks an editorial rule.
var ErrViolations = errors.New("schema violations found")

func (a *app) validateCommand() *cobra.Command {
	var keyword string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check every stored record against the editorial rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			backend, _, err := a.backend(cmd.Context())
			if err != nil {
				return err
			}

			records, err := backend.AllDocuments(cmd.Context())
			if err != nil {
				return fmt.Errorf("list records: %w", err)
			}

			w := cmd.OutOrStdout()
			violations := table.NewWriter()
			violations.SetOutputMirror(w)
			violations.SetStyle(table.StyleLight)
			violations.AppendHeader(table.Row{"Kind", "Slug", "Field", "Problem"})

			count := 0
			for _, rec := range records {
				for _, v := range schema.Validate(rec) {
					violations.AppendRow(table.Row{rec.RecordKind(), rec.RecordSlug(), v.Field, v.Message})
					count++
				}
			}

			if keyword != "" {
				printSEO(cmd, records, keyword)
			}

			if count > 0 {
				violations.Render()
				return fmt.Errorf("%w: %d across %d records", ErrViolations, count, len(records))
			}
			fmt.Fprintf(w, "%d records valid\n", len(records))
			return nil
		},
	}

	cmd.Flags().StringVar(&keyword, "keyword", "", "also score chiefOfStaff documents for this SEO keyword")
	return cmd
}

func printSEO(cmd *cobra.Command, records []content.Record, keyword string) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Slug", "Score", "Words", "Title", "H1", "Body", "Bold", "Links"})

	for _, rec := range records {
		doc, ok := rec.(*content.Document)
		if !ok {
			continue
		}
		r := schema.SEOScore(doc, keyword)
		t.AppendRow(table.Row{
			doc.Slug, r.Score, r.WordCount,
			check(r.HasKeywordInTitle), check(r.HasKeywordInH1), check(r.HasKeywordInContent),
			check(r.HasBoldKeyword), check(r.HasInternalLinks),
		})
	}
	t.Render()
}

func check(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}
