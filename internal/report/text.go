package report

import (
	"fmt"
	"strings"

	"github.com/sawamura/taskhub/internal/style"
)

func rule(width int) string {
	return strings.Repeat("━", width)
}

func (t *TeamReport) renderText() string {
	totalOpen, totalDone := t.Totals()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(style.Bold.Render("Team Overview"))
	b.WriteString("\n")
	b.WriteString(rule(50) + "\n")
	b.WriteString(fmt.Sprintf("%-20s %8s %8s %8s\n", "User", "Open", "Done", "Total"))
	b.WriteString(rule(50) + "\n")

	for _, row := range t.Rows {
		name := truncateName(row.DisplayName)
		if row.Unassigned() {
			// Done is meaningless for unassigned work.
			b.WriteString(fmt.Sprintf("%s %8d %8s %8d\n",
				style.Warning.Render(fmt.Sprintf("%-20s", name)), row.Open, "-", row.Total()))
		} else {
			b.WriteString(fmt.Sprintf("%-20s %8d %8d %8d\n", name, row.Open, row.Done, row.Total()))
		}
	}

	b.WriteString(rule(50) + "\n")
	b.WriteString(fmt.Sprintf("%-20s %8d %8d %8d\n", "Total", totalOpen, totalDone, totalOpen+totalDone))
	b.WriteString("\n")
	return b.String()
}

func (w *WorkloadReport) renderText() string {
	totalTasks, totalMinutes := w.Totals()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(style.Bold.Render("Workload Summary"))
	b.WriteString("\n")
	b.WriteString(rule(50) + "\n")
	b.WriteString(fmt.Sprintf("%-20s %10s %15s\n", "User", "Tasks", "Estimated"))
	b.WriteString(rule(50) + "\n")

	for _, row := range w.Rows {
		name := truncateName(row.DisplayName)
		minutes := row.TotalMinutes
		b.WriteString(fmt.Sprintf("%-20s %10d %15s\n", name, row.TaskCount, FormatEstimate(&minutes)))
	}

	b.WriteString(rule(50) + "\n")
	b.WriteString(fmt.Sprintf("%-20s %10d %15s\n", "Total", totalTasks, FormatEstimate(&totalMinutes)))
	b.WriteString("\n")
	return b.String()
}

func (s *StatsReport) renderText() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(style.Bold.Render(fmt.Sprintf("Task Statistics (last %d days)", s.PeriodDays)))
	b.WriteString("\n")
	b.WriteString(rule(40) + "\n")
	b.WriteString(fmt.Sprintf("Created:        %d\n", s.Created))
	b.WriteString(fmt.Sprintf("Completed:      %d\n", s.Completed))
	b.WriteString(fmt.Sprintf("Completion:     %d%%\n", s.CompletionRate))
	b.WriteString(rule(40) + "\n")

	b.WriteString("Overdue:        " + alertCount(s.Overdue) + "\n")
	b.WriteString("High Priority:  " + alertCount(s.HighPriority) + "\n")

	b.WriteString(rule(40) + "\n")
	b.WriteString("By Status:\n")
	b.WriteString(fmt.Sprintf("  ongoing       %d\n", s.Ongoing))
	b.WriteString(fmt.Sprintf("  pending       %d\n", s.Pending))
	b.WriteString(fmt.Sprintf("  suspended     %d\n", s.Suspended))
	b.WriteString(fmt.Sprintf("  done          %d\n", s.Done))
	b.WriteString(fmt.Sprintf("  cancelled     %d\n", s.Cancelled))
	b.WriteString("\n")
	return b.String()
}

// alertCount highlights a counter only when it is nonzero.
func alertCount(n int64) string {
	if n > 0 {
		return style.Alert.Render(fmt.Sprintf("%d", n))
	}
	return fmt.Sprintf("%d", n)
}
