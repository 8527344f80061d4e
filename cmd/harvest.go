package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newHarvestCmd() *cobra.Command {
	var (
		sources []string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "harvest",
		Short: "Run one harvest and print the records.",
		Long: `harvest fetches every configured job board once (or a selection
via --sources), deduplicates the postings, and writes them to stdout as
JSON or CSV.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			instance := appFromContext(cmd.Context())

			records := instance.Harvester().Harvest(cmd.Context(), sources)

			switch format {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(records)
			case "csv":
				w := csv.NewWriter(os.Stdout)
				if err := w.Write([]string{"job_title", "company", "category", "date_posted", "status", "website"}); err != nil {
					return err
				}
				for _, rec := range records {
					row := []string{rec.Title, rec.Company, rec.Category, rec.DatePosted, rec.Status, rec.Website}
					if err := w.Write(row); err != nil {
						return err
					}
				}
				w.Flush()
				return w.Error()
			default:
				return fmt.Errorf("unknown format %q (want json or csv)", format)
			}
		},
	}

	cmd.Flags().StringSliceVar(&sources, "sources", nil,
		fmt.Sprintf("comma-separated source ids to harvest (default all: %s)", strings.Join(knownSourceIDs, ",")))
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or csv")

	return cmd
}

// knownSourceIDs is the help-text listing of selectable boards.
var knownSourceIDs = []string{"arbeitnow", "berlinstartupjobs", "job4good", "turijobs"}
