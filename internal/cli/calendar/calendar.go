package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	deadlines "github.com/thenoetrevino/applyboard/internal/calendar"
	"github.com/thenoetrevino/applyboard/internal/cli"
	"github.com/thenoetrevino/applyboard/internal/cli/handler"
	"github.com/thenoetrevino/applyboard/internal/cli/styles"
)

// CalendarCmd returns the calendar command
func CalendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show application deadlines",
		Long: `Show upcoming deadlines, or a month view with --month.
Decided applications (offers and rejections) are left out of the upcoming list.

Examples:
  applyboard calendar
  applyboard calendar --days 7
  applyboard calendar --month 2026-11
`,
		RunE: handler.Refreshed(runCalendar),
	}

	cmd.Flags().Int("days", 30, "How many days ahead to look")
	cmd.Flags().String("month", "", "Show one month (YYYY-MM)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCalendar(ctx context.Context, c *cli.CLI, out *cli.OutputFormatter, args *handler.Arguments) error {
	cmd := args.GetCmd()
	companies := c.App.CompanyService.Companies()

	if month, _ := cmd.Flags().GetString("month"); month != "" {
		start, err := time.ParseInLocation("2006-01", month, time.Local)
		if err != nil {
			return out.Fail(cli.ExitDataErr, "INVALID_MONTH", fmt.Errorf("invalid month '%s' (use YYYY-MM)", month))
		}
		var events []deadlines.Event
		for _, e := range deadlines.Events(companies, time.Local) {
			if e.Date.Year() == start.Year() && e.Date.Month() == start.Month() {
				events = append(events, e)
			}
		}
		if out.JSON || out.Quiet {
			return emit(out, events)
		}
		days := deadlines.DaysWithEvents(companies, start.Year(), start.Month(), time.Local)
		fmt.Println(monthGrid(start, days))
		printEvents(events)
		return nil
	}

	days, _ := cmd.Flags().GetInt("days")
	if days <= 0 {
		return out.Fail(cli.ExitUsage, "INVALID_DAYS", fmt.Errorf("--days must be positive"))
	}
	events := deadlines.Upcoming(companies, time.Now(), time.Duration(days)*24*time.Hour)
	if out.JSON || out.Quiet {
		return emit(out, events)
	}
	if len(events) == 0 {
		fmt.Printf("No deadlines in the next %d days\n", days)
		return nil
	}
	fmt.Println(styles.TitleStyle.Render(fmt.Sprintf("Deadlines in the next %d days", days)))
	printEvents(events)
	return nil
}

func emit(out *cli.OutputFormatter, events []deadlines.Event) error {
	if out.Quiet {
		for _, e := range events {
			fmt.Println(e.Company.ID)
		}
		return nil
	}
	list := make([]map[string]interface{}, len(events))
	for i, e := range events {
		list[i] = map[string]interface{}{
			"date":      e.Date.Format("2006-01-02"),
			"companyId": e.Company.ID,
			"name":      e.Company.Name,
			"position":  e.Company.Position,
			"status":    e.Company.Status,
		}
	}
	return out.JSONResult("events", list)
}

func printEvents(events []deadlines.Event) {
	for _, e := range events {
		fmt.Printf("  %s  %s - %s %s\n",
			e.Date.Format("Mon Jan 2"),
			e.Company.Name,
			e.Company.Position,
			styles.StatusBadge(e.Company.Status))
	}
}

// monthGrid renders a Monday-first month with deadline days starred
func monthGrid(first time.Time, marked map[int]bool) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(first.Format("January 2006")))
	b.WriteString("\n Mo  Tu  We  Th  Fr  Sa  Su\n")

	offset := (int(first.Weekday()) + 6) % 7
	b.WriteString(strings.Repeat("    ", offset))

	last := first.AddDate(0, 1, -1).Day()
	for day := 1; day <= last; day++ {
		mark := " "
		if marked[day] {
			mark = "*"
		}
		b.WriteString(fmt.Sprintf("%3d%s", day, mark))
		if (offset+day)%7 == 0 {
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
