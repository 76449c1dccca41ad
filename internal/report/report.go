// Package report holds the format-independent aggregates the reporting
// engine computes and their text, JSON and markdown renderings. All three
// formats are derived from the same intermediate values, so totals agree
// across formats for identical input.
package report

import "fmt"

// Format selects the output rendering. It never affects the aggregates.
type Format int

const (
	FormatText Format = iota
	FormatJSON
	FormatMarkdown
)

// PickFormat maps the two output toggles to a Format. JSON wins when both
// are set; the CLI rejects that combination at parse time, this keeps the
// precedence defined for programmatic callers.
func PickFormat(json, markdown bool) Format {
	switch {
	case json:
		return FormatJSON
	case markdown:
		return FormatMarkdown
	default:
		return FormatText
	}
}

// TeamRow is one bucket of the team report. UserID is nil for the
// synthetic unassigned bucket.
type TeamRow struct {
	UserID      *uint64
	UserName    string
	DisplayName string
	Open        int64
	Done        int64
}

func (r TeamRow) Total() int64 {
	return r.Open + r.Done
}

// Unassigned reports whether this is the synthetic bucket for tasks with
// no assignee.
func (r TeamRow) Unassigned() bool {
	return r.UserID == nil
}

// TeamReport is the task distribution by assignee.
type TeamReport struct {
	Rows []TeamRow
}

// Totals returns the grand open and done counters.
func (t *TeamReport) Totals() (open, done int64) {
	for _, r := range t.Rows {
		open += r.Open
		done += r.Done
	}
	return open, done
}

// WorkloadRow is one user's open-task load.
type WorkloadRow struct {
	UserID       uint64
	UserName     string
	DisplayName  string
	TaskCount    int64
	TotalMinutes int64
}

// WorkloadReport is the estimated open workload per user, heaviest first.
type WorkloadReport struct {
	Rows []WorkloadRow
}

// Totals returns the grand task and minute counters.
func (w *WorkloadReport) Totals() (tasks, minutes int64) {
	for _, r := range w.Rows {
		tasks += r.TaskCount
		minutes += r.TotalMinutes
	}
	return tasks, minutes
}

// StatsReport holds completion, overdue and status-breakdown counters for
// a lookback window.
type StatsReport struct {
	PeriodDays     int64
	Created        int64
	Completed      int64
	CompletionRate int64
	Overdue        int64
	HighPriority   int64
	Ongoing        int64
	Pending        int64
	Suspended      int64
	Done           int64
	Cancelled      int64
}

// Render renders the team report in the requested format.
func (t *TeamReport) Render(f Format) string {
	switch f {
	case FormatJSON:
		return t.renderJSON()
	case FormatMarkdown:
		return t.renderMarkdown()
	default:
		return t.renderText()
	}
}

// Render renders the workload report in the requested format.
func (w *WorkloadReport) Render(f Format) string {
	switch f {
	case FormatJSON:
		return w.renderJSON()
	case FormatMarkdown:
		return w.renderMarkdown()
	default:
		return w.renderText()
	}
}

// Render renders the stats report in the requested format.
func (s *StatsReport) Render(f Format) string {
	switch f {
	case FormatJSON:
		return s.renderJSON()
	case FormatMarkdown:
		return s.renderMarkdown()
	default:
		return s.renderText()
	}
}

// FormatEstimate renders a minute count as a compact duration. Nil means
// no estimate recorded.
func FormatEstimate(minutes *int64) string {
	if minutes == nil {
		return "-"
	}
	m := *minutes
	if m >= 60 {
		if m%60 == 0 {
			return fmt.Sprintf("%dh", m/60)
		}
		return fmt.Sprintf("%dh %dm", m/60, m%60)
	}
	return fmt.Sprintf("%dm", m)
}

// truncateName caps display names at 18 runes, keeping the first 15 plus
// an ellipsis.
func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) > 18 {
		return string(runes[:15]) + "..."
	}
	return name
}
