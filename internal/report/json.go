package report

import "encoding/json"

// TeamJSON is the JSON document shape of the team report.
type TeamJSON struct {
	Team   []TeamRowJSON  `json:"team"`
	Totals TeamTotalsJSON `json:"totals"`
}

type TeamRowJSON struct {
	User        string `json:"user"`
	DisplayName string `json:"display_name"`
	Open        int64  `json:"open"`
	Done        int64  `json:"done"`
	Total       int64  `json:"total"`
}

type TeamTotalsJSON struct {
	Open  int64 `json:"open"`
	Done  int64 `json:"done"`
	Total int64 `json:"total"`
}

// JSONDoc returns the marshal-ready document.
func (t *TeamReport) JSONDoc() TeamJSON {
	rows := make([]TeamRowJSON, 0, len(t.Rows))
	for _, r := range t.Rows {
		rows = append(rows, TeamRowJSON{
			User:        r.UserName,
			DisplayName: r.DisplayName,
			Open:        r.Open,
			Done:        r.Done,
			Total:       r.Total(),
		})
	}
	open, done := t.Totals()
	return TeamJSON{
		Team:   rows,
		Totals: TeamTotalsJSON{Open: open, Done: done, Total: open + done},
	}
}

func (t *TeamReport) renderJSON() string {
	return marshalIndent(t.JSONDoc())
}

// WorkloadJSON is the JSON document shape of the workload report.
type WorkloadJSON struct {
	Workload []WorkloadRowJSON  `json:"workload"`
	Totals   WorkloadTotalsJSON `json:"totals"`
}

type WorkloadRowJSON struct {
	User               string `json:"user"`
	DisplayName        string `json:"display_name"`
	Tasks              int64  `json:"tasks"`
	EstimatedMinutes   int64  `json:"estimated_minutes"`
	EstimatedFormatted string `json:"estimated_formatted"`
}

type WorkloadTotalsJSON struct {
	Tasks              int64  `json:"tasks"`
	EstimatedMinutes   int64  `json:"estimated_minutes"`
	EstimatedFormatted string `json:"estimated_formatted"`
}

// JSONDoc returns the marshal-ready document.
func (w *WorkloadReport) JSONDoc() WorkloadJSON {
	rows := make([]WorkloadRowJSON, 0, len(w.Rows))
	for _, r := range w.Rows {
		minutes := r.TotalMinutes
		rows = append(rows, WorkloadRowJSON{
			User:               r.UserName,
			DisplayName:        r.DisplayName,
			Tasks:              r.TaskCount,
			EstimatedMinutes:   r.TotalMinutes,
			EstimatedFormatted: FormatEstimate(&minutes),
		})
	}
	tasks, minutes := w.Totals()
	return WorkloadJSON{
		Workload: rows,
		Totals: WorkloadTotalsJSON{
			Tasks:              tasks,
			EstimatedMinutes:   minutes,
			EstimatedFormatted: FormatEstimate(&minutes),
		},
	}
}

func (w *WorkloadReport) renderJSON() string {
	return marshalIndent(w.JSONDoc())
}

// StatsJSON is the JSON document shape of the stats report.
type StatsJSON struct {
	PeriodDays     int64           `json:"period_days"`
	Created        int64           `json:"created"`
	Completed      int64           `json:"completed"`
	CompletionRate int64           `json:"completion_rate"`
	Overdue        int64           `json:"overdue"`
	HighPriority   int64           `json:"high_priority"`
	ByStatus       StatsStatusJSON `json:"by_status"`
}

type StatsStatusJSON struct {
	Ongoing   int64 `json:"ongoing"`
	Pending   int64 `json:"pending"`
	Suspended int64 `json:"suspended"`
	Done      int64 `json:"done"`
	Cancelled int64 `json:"cancelled"`
}

// JSONDoc returns the marshal-ready document.
func (s *StatsReport) JSONDoc() StatsJSON {
	return StatsJSON{
		PeriodDays:     s.PeriodDays,
		Created:        s.Created,
		Completed:      s.Completed,
		CompletionRate: s.CompletionRate,
		Overdue:        s.Overdue,
		HighPriority:   s.HighPriority,
		ByStatus: StatsStatusJSON{
			Ongoing:   s.Ongoing,
			Pending:   s.Pending,
			Suspended: s.Suspended,
			Done:      s.Done,
			Cancelled: s.Cancelled,
		},
	}
}

func (s *StatsReport) renderJSON() string {
	return marshalIndent(s.JSONDoc())
}

func marshalIndent(v interface{}) string {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		// The document types contain nothing unmarshalable.
		return "{}"
	}
	return string(out) + "\n"
}
