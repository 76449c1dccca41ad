package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPickFormat(t *testing.T) {
	require.Equal(t, FormatText, PickFormat(false, false))
	require.Equal(t, FormatJSON, PickFormat(true, false))
	require.Equal(t, FormatMarkdown, PickFormat(false, true))
	// JSON takes precedence when a programmatic caller sets both.
	require.Equal(t, FormatJSON, PickFormat(true, true))
}

func TestTruncateName(t *testing.T) {
	require.Equal(t, "short", truncateName("short"))
	require.Equal(t, "exactly-18-chars--", truncateName("exactly-18-chars--"))
	require.Equal(t, "a-very-long-dis...", truncateName("a-very-long-display-name"))
	// Runes, not bytes.
	require.Equal(t, "ありがとうございましたありがと...", truncateName("ありがとうございましたありがとうございました"))
}

func TestFormatEstimate(t *testing.T) {
	cases := []struct {
		minutes int64
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h"},
		{90, "1h 30m"},
		{150, "2h 30m"},
	}
	for _, c := range cases {
		m := c.minutes
		require.Equal(t, c.want, FormatEstimate(&m))
	}
	require.Equal(t, "-", FormatEstimate(nil))
}

func sampleTeam() *TeamReport {
	aliceID, bobID := uint64(1), uint64(2)
	return &TeamReport{Rows: []TeamRow{
		{UserID: &aliceID, UserName: "alice", DisplayName: "Alice", Open: 3, Done: 1},
		{UserID: &bobID, UserName: "bob", DisplayName: "Bob", Open: 0, Done: 2},
		{UserName: "unassigned", DisplayName: "unassigned", Open: 1},
	}}
}

func TestTeamTotals(t *testing.T) {
	open, done := sampleTeam().Totals()
	require.EqualValues(t, 4, open)
	require.EqualValues(t, 3, done)
}

func TestTeamRenderText(t *testing.T) {
	out := sampleTeam().Render(FormatText)
	require.Contains(t, out, "Team Overview")
	require.Contains(t, out, "Alice")
	require.Contains(t, out, "unassigned")
	// Totals row carries the grand counters.
	require.Contains(t, out, "Total")
}

func TestTeamRenderMarkdown(t *testing.T) {
	out := sampleTeam().Render(FormatMarkdown)
	require.True(t, strings.HasPrefix(out, "# Team Overview"))
	require.Contains(t, out, "| User | Open | Done | Total |")
	require.Contains(t, out, "| Alice | 3 | 1 | 4 |")
	require.Contains(t, out, "| **Total** | **4** | **3** | **7** |")
}

func TestTeamRenderJSONRoundTrip(t *testing.T) {
	out := sampleTeam().Render(FormatJSON)

	var parsed TeamJSON
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	require.Len(t, parsed.Team, 3)
	require.EqualValues(t, 4, parsed.Totals.Open)
	require.EqualValues(t, 3, parsed.Totals.Done)
	require.EqualValues(t, 7, parsed.Totals.Total)
	require.Equal(t, "unassigned", parsed.Team[2].User)
}

func TestWorkloadRendering(t *testing.T) {
	w := &WorkloadReport{Rows: []WorkloadRow{
		{UserID: 1, UserName: "alice", DisplayName: "Alice", TaskCount: 2, TotalMinutes: 90},
		{UserID: 2, UserName: "bob", DisplayName: "Bob", TaskCount: 1, TotalMinutes: 30},
	}}

	tasks, minutes := w.Totals()
	require.EqualValues(t, 3, tasks)
	require.EqualValues(t, 120, minutes)

	md := w.Render(FormatMarkdown)
	require.Contains(t, md, "| Alice | 2 | 1h 30m |")
	require.Contains(t, md, "| **Total** | **3** | **2h** |")

	var parsed WorkloadJSON
	require.NoError(t, json.Unmarshal([]byte(w.Render(FormatJSON)), &parsed))
	require.EqualValues(t, 120, parsed.Totals.EstimatedMinutes)
	require.Equal(t, "2h", parsed.Totals.EstimatedFormatted)
}

func TestStatsRendering(t *testing.T) {
	s := &StatsReport{
		PeriodDays:     30,
		Created:        10,
		Completed:      7,
		CompletionRate: 70,
		Overdue:        2,
		HighPriority:   1,
		Ongoing:        3,
		Pending:        1,
		Suspended:      1,
		Done:           7,
		Cancelled:      2,
	}

	text := s.Render(FormatText)
	require.Contains(t, text, "Task Statistics (last 30 days)")
	require.Contains(t, text, "Completion:     70%")

	md := s.Render(FormatMarkdown)
	require.Contains(t, md, "| Completion Rate | 70% |")
	require.Contains(t, md, "| cancelled | 2 |")

	var parsed StatsJSON
	require.NoError(t, json.Unmarshal([]byte(s.Render(FormatJSON)), &parsed))
	require.EqualValues(t, 30, parsed.PeriodDays)
	require.EqualValues(t, 70, parsed.CompletionRate)
	require.EqualValues(t, 3, parsed.ByStatus.Ongoing)
}
