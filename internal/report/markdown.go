package report

import (
	"fmt"
	"strings"
)

func (t *TeamReport) renderMarkdown() string {
	totalOpen, totalDone := t.Totals()

	var b strings.Builder
	b.WriteString("# Team Overview\n\n")
	b.WriteString("| User | Open | Done | Total |\n")
	b.WriteString("|------|------|------|-------|\n")

	for _, row := range t.Rows {
		b.WriteString(fmt.Sprintf("| %s | %d | %d | %d |\n",
			row.DisplayName, row.Open, row.Done, row.Total()))
	}

	b.WriteString(fmt.Sprintf("| **Total** | **%d** | **%d** | **%d** |\n",
		totalOpen, totalDone, totalOpen+totalDone))
	return b.String()
}

func (w *WorkloadReport) renderMarkdown() string {
	totalTasks, totalMinutes := w.Totals()

	var b strings.Builder
	b.WriteString("# Workload Summary\n\n")
	b.WriteString("| User | Tasks | Estimated |\n")
	b.WriteString("|------|-------|-----------|\n")

	for _, row := range w.Rows {
		minutes := row.TotalMinutes
		b.WriteString(fmt.Sprintf("| %s | %d | %s |\n",
			row.DisplayName, row.TaskCount, FormatEstimate(&minutes)))
	}

	b.WriteString(fmt.Sprintf("| **Total** | **%d** | **%s** |\n",
		totalTasks, FormatEstimate(&totalMinutes)))
	return b.String()
}

func (s *StatsReport) renderMarkdown() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("# Task Statistics (last %d days)\n\n", s.PeriodDays))
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	b.WriteString(fmt.Sprintf("| Created | %d |\n", s.Created))
	b.WriteString(fmt.Sprintf("| Completed | %d |\n", s.Completed))
	b.WriteString(fmt.Sprintf("| Completion Rate | %d%% |\n", s.CompletionRate))
	b.WriteString(fmt.Sprintf("| Overdue | %d |\n", s.Overdue))
	b.WriteString(fmt.Sprintf("| High Priority | %d |\n", s.HighPriority))
	b.WriteString("\n## By Status\n\n")
	b.WriteString("| Status | Count |\n")
	b.WriteString("|--------|-------|\n")
	b.WriteString(fmt.Sprintf("| ongoing | %d |\n", s.Ongoing))
	b.WriteString(fmt.Sprintf("| pending | %d |\n", s.Pending))
	b.WriteString(fmt.Sprintf("| suspended | %d |\n", s.Suspended))
	b.WriteString(fmt.Sprintf("| done | %d |\n", s.Done))
	b.WriteString(fmt.Sprintf("| cancelled | %d |\n", s.Cancelled))
	return b.String()
}
