package cli

import (
	"fmt"

	"github.com/sawamura/taskhub/internal/report"
	"github.com/spf13/cobra"
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Show task distribution by user",
	Long: `Show how open and done tasks are distributed across the team.

Tasks without an assignee are grouped under 'unassigned'. Users with no
tasks are omitted.`,
	RunE: runTeam,
}

var workloadCmd = &cobra.Command{
	Use:   "workload",
	Short: "Show estimated open workload per user",
	Long: `Sum the estimated minutes of open tasks per user, heaviest first.

With --user, that user is shown even with no open tasks.`,
	RunE: runWorkload,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completion rates and overdue analysis",
	RunE:  runStats,
}

var (
	teamJSON     bool
	teamMd       bool
	workloadJSON bool
	workloadMd   bool
	workloadUser string
	statsJSON    bool
	statsMd      bool
	statsDays    int64
)

func init() {
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(workloadCmd)
	rootCmd.AddCommand(statsCmd)

	teamCmd.Flags().BoolVar(&teamJSON, "json", false, "Output as JSON")
	teamCmd.Flags().BoolVar(&teamMd, "md", false, "Output as markdown")
	teamCmd.MarkFlagsMutuallyExclusive("json", "md")

	workloadCmd.Flags().BoolVar(&workloadJSON, "json", false, "Output as JSON")
	workloadCmd.Flags().BoolVar(&workloadMd, "md", false, "Output as markdown")
	workloadCmd.Flags().StringVar(&workloadUser, "user", "", "Limit to a single user")
	workloadCmd.MarkFlagsMutuallyExclusive("json", "md")

	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output as JSON")
	statsCmd.Flags().BoolVar(&statsMd, "md", false, "Output as markdown")
	statsCmd.Flags().Int64Var(&statsDays, "days", 30, "Lookback window in days")
	statsCmd.MarkFlagsMutuallyExclusive("json", "md")
}

func runTeam(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	team, err := a.reports.Team()
	if err != nil {
		return err
	}

	fmt.Print(team.Render(report.PickFormat(teamJSON, teamMd)))
	return nil
}

func runWorkload(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	var userFilter *string
	if workloadUser != "" {
		userFilter = &workloadUser
	}

	workload, err := a.reports.Workload(userFilter)
	if err != nil {
		return err
	}

	fmt.Print(workload.Render(report.PickFormat(workloadJSON, workloadMd)))
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	stats, err := a.reports.Stats(statsDays)
	if err != nil {
		return err
	}

	fmt.Print(stats.Render(report.PickFormat(statsJSON, statsMd)))
	return nil
}
