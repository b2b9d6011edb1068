package cli

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"
	"text/tabwriter"

	"meeting-scheduler/internal/domain/assignment"
	"meeting-scheduler/internal/domain/conflict"
	"meeting-scheduler/internal/domain/participant"
	"meeting-scheduler/internal/domain/schedule"

	"github.com/spf13/cobra"
)

type generateReport struct {
	Event       string             `json:"event"`
	Strategy    string             `json:"strategy"`
	Desired     int                `json:"desired"`
	Placed      int                `json:"placed"`
	Days        int                `json:"days"`
	Meetings    []meetingRow       `json:"meetings"`
	Unscheduled []unscheduledRow   `json:"unscheduled"`
	Conflicts   conflictSummaryRow `json:"conflicts"`
}

type meetingRow struct {
	Date     string `json:"date"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Supplier string `json:"supplier"`
	Buyer    string `json:"buyer"`
}

type unscheduledRow struct {
	Supplier string `json:"supplier"`
	Buyer    string `json:"buyer"`
	Reason   string `json:"reason"`
}

type doubleBookingRow struct {
	Buyer    string `json:"buyer"`
	Date     string `json:"date"`
	Start    string `json:"start"`
	Meetings int    `json:"meetings"`
}

type conflictSummaryRow struct {
	Total                int                `json:"total"`
	DoubleBookings       []doubleBookingRow `json:"doubleBookings"`
	PreferenceViolations []string           `json:"preferenceViolations"`
}

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	var (
		strategy string
		seed     uint64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a meeting schedule from an event file",
		Long: `Place every permitted supplier/buyer pair on the slot grid and print the
schedule, the pairs that could not be placed and a conflict summary.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ev, err := loadEvent(opts.eventFile)
			if err != nil {
				return err
			}
			strat, err := assignment.ParseStrategy(strategy)
			if err != nil {
				return err
			}

			genOpts := assignment.Options{Strategy: strat}
			if cmd.Flags().Changed("seed") {
				genOpts.Rand = rand.New(rand.NewPCG(seed, seed))
			}
			res, err := assignment.Generate(ev.Config, ev.Suppliers, ev.Buyers, genOpts)
			if err != nil {
				return err
			}
			dir, err := participant.NewDirectory(ev.Suppliers, ev.Buyers)
			if err != nil {
				return err
			}

			report := buildReport(ev.Name, res, dir)
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			return printReport(cmd, report)
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", string(assignment.StrategyEfficient), "Placement strategy: efficient or spaced")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Shuffle equal-priority pairs with this seed")
	return cmd
}

func buildReport(name string, res assignment.Result, dir *participant.Directory) generateReport {
	sched := res.Schedule()
	report := generateReport{
		Event:       name,
		Strategy:    string(res.Stats.Strategy),
		Desired:     res.Stats.Desired,
		Placed:      res.Stats.Placed,
		Days:        res.Stats.Days,
		Meetings:    meetingRows(sched, dir),
		Unscheduled: make([]unscheduledRow, 0, len(res.Unscheduled)),
	}
	for _, u := range res.Unscheduled {
		report.Unscheduled = append(report.Unscheduled, unscheduledRow{
			Supplier: dir.SupplierName(u.SupplierID),
			Buyer:    dir.BuyerName(u.BuyerID),
			Reason:   u.Reason,
		})
	}

	summary := conflict.NewEngine(dir).Summarize(sched)
	report.Conflicts = conflictSummaryRow{
		Total:                summary.Total(),
		DoubleBookings:       make([]doubleBookingRow, 0, len(summary.DoubleBookings)),
		PreferenceViolations: make([]string, 0, len(summary.PreferenceViolations)),
	}
	for _, d := range summary.DoubleBookings {
		slot, _ := sched.Slot(d.SlotID)
		report.Conflicts.DoubleBookings = append(report.Conflicts.DoubleBookings, doubleBookingRow{
			Buyer:    dir.BuyerName(d.BuyerID),
			Date:     slot.DateKey(),
			Start:    slot.Start().Format(timeLayout),
			Meetings: len(d.MeetingIDs),
		})
	}
	for _, v := range summary.PreferenceViolations {
		report.Conflicts.PreferenceViolations = append(report.Conflicts.PreferenceViolations, v.Description)
	}
	return report
}

// meetingRows lists meetings in time order, then by supplier name.
func meetingRows(sched *schedule.Schedule, dir *participant.Directory) []meetingRow {
	type placed struct {
		row   meetingRow
		start int64
	}
	var all []placed
	for _, m := range sched.Meetings() {
		slot, ok := sched.Slot(m.TimeSlotID())
		if !ok {
			continue
		}
		all = append(all, placed{
			row: meetingRow{
				Date:     slot.DateKey(),
				Start:    slot.Start().Format(timeLayout),
				End:      slot.End().Format(timeLayout),
				Supplier: dir.SupplierName(m.SupplierID()),
				Buyer:    dir.BuyerName(m.BuyerID()),
			},
			start: slot.Start().Unix(),
		})
	}
	slices.SortFunc(all, func(a, b placed) int {
		return cmp.Or(cmp.Compare(a.start, b.start), cmp.Compare(a.row.Supplier, b.row.Supplier))
	})

	rows := make([]meetingRow, 0, len(all))
	for _, p := range all {
		rows = append(rows, p.row)
	}
	return rows
}

func printReport(cmd *cobra.Command, r generateReport) error {
	out := cmd.OutOrStdout()

	printSection(out, fmt.Sprintf("%s (%s)", r.Event, r.Strategy))
	printDim(out, fmt.Sprintf("desired %d, placed %d, unscheduled %d, days %d", r.Desired, r.Placed, len(r.Unscheduled), r.Days))
	_, _ = fmt.Fprintln(out)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "DATE\tSTART\tEND\tSUPPLIER\tBUYER")
	for _, m := range r.Meetings {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", m.Date, m.Start, m.End, m.Supplier, m.Buyer)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.Unscheduled) > 0 {
		printSection(out, "Unscheduled")
		for _, u := range r.Unscheduled {
			printWarning(out, fmt.Sprintf("%s / %s: %s", u.Supplier, u.Buyer, u.Reason))
		}
	}

	printSection(out, "Conflicts")
	if r.Conflicts.Total == 0 {
		printDim(out, "none")
		return nil
	}
	for _, d := range r.Conflicts.DoubleBookings {
		printWarning(out, fmt.Sprintf("%s is double-booked at %s %s (%d meetings)", d.Buyer, d.Date, d.Start, d.Meetings))
	}
	for _, v := range r.Conflicts.PreferenceViolations {
		printWarning(out, v)
	}
	return nil
}
