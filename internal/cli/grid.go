package cli

import (
	"fmt"
	"text/tabwriter"

	"meeting-scheduler/internal/domain/grid"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type slotRow struct {
	ID    uuid.UUID `json:"id"`
	Date  string    `json:"date"`
	Start string    `json:"start"`
	End   string    `json:"end"`
	Break string    `json:"break,omitempty"`
}

func newGridCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "grid",
		Short: "Print the time slot grid of an event",
		Long:  `Build the slot grid from the event window and breaks, without placing meetings.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ev, err := loadEvent(opts.eventFile)
			if err != nil {
				return err
			}
			slots, err := grid.Build(ev.Config)
			if err != nil {
				return err
			}

			rows := make([]slotRow, 0, len(slots))
			for _, s := range slots {
				rows = append(rows, slotRow{
					ID:    s.ID(),
					Date:  s.DateKey(),
					Start: s.Start().Format(timeLayout),
					End:   s.End().Format(timeLayout),
					Break: s.BreakLabel(),
				})
			}
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), rows)
			}

			out := cmd.OutOrStdout()
			printSection(out, fmt.Sprintf("%s: %d slot(s), %d bookable", ev.Name, len(slots), len(grid.MeetingSlots(slots))))
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "DATE\tSTART\tEND\tBREAK")
			for _, r := range rows {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Date, r.Start, r.End, r.Break)
			}
			return tw.Flush()
		},
	}
}

func loadEvent(path string) (*Event, error) {
	f, err := LoadEventFile(path)
	if err != nil {
		return nil, err
	}
	return f.Resolve()
}
