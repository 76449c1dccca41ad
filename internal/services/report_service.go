package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sawamura/taskhub/internal/models"
	"github.com/sawamura/taskhub/internal/report"
	"github.com/sawamura/taskhub/internal/repository"
	"github.com/sawamura/taskhub/internal/taskerr"
	"gorm.io/gorm"
)

// ReportService computes the team, workload and stats aggregates from a
// snapshot of task records and the user directory. It never writes.
type ReportService struct {
	userRepo repository.UserRepository
	taskRepo repository.TaskRepository

	// now is swappable for tests.
	now func() time.Time
}

// NewReportService creates a new ReportService.
func NewReportService(userRepo repository.UserRepository, taskRepo repository.TaskRepository) *ReportService {
	return &ReportService{
		userRepo: userRepo,
		taskRepo: taskRepo,
		now:      time.Now,
	}
}

// Team builds the task distribution by assignee. Tasks with no assignee
// land in a synthetic unassigned bucket; tasks pointing at an id missing
// from the directory get a placeholder bucket so orphaned references stay
// visible. Buckets with no open and no done tasks are dropped.
func (s *ReportService) Team() (*report.TeamReport, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, taskerr.Storage(err, "failed to list users")
	}

	tasks, err := s.taskRepo.List(repository.TaskFilter{Action: models.ActionTask})
	if err != nil {
		return nil, taskerr.Storage(err, "failed to query tasks")
	}

	const unassignedKey = uint64(0)
	buckets := make(map[uint64]*report.TeamRow)

	for i := range users {
		u := &users[i]
		id := u.ID
		buckets[id] = &report.TeamRow{
			UserID:      &id,
			UserName:    u.Name,
			DisplayName: u.Display(),
		}
	}
	buckets[unassignedKey] = &report.TeamRow{
		UserName:    "unassigned",
		DisplayName: "unassigned",
	}

	for _, task := range tasks {
		key := unassignedKey
		if task.AssigneeID != nil {
			key = *task.AssigneeID
		}
		row, ok := buckets[key]
		if !ok {
			// Assignee id with no directory entry: the user was deleted
			// out from under the task.
			id := key
			row = &report.TeamRow{
				UserID:      &id,
				UserName:    fmt.Sprintf("user_%d", id),
				DisplayName: fmt.Sprintf("Unknown (%d)", id),
			}
			buckets[key] = row
		}

		switch {
		case task.Status.IsDone():
			row.Done++
		case task.Status.IsOpen():
			row.Open++
		}
	}

	rows := make([]report.TeamRow, 0, len(buckets))
	for _, row := range buckets {
		if row.Open > 0 || row.Done > 0 {
			rows = append(rows, *row)
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		// The unassigned bucket always sorts last.
		if rows[i].Unassigned() != rows[j].Unassigned() {
			return !rows[i].Unassigned()
		}
		return rows[i].UserName < rows[j].UserName
	})

	return &report.TeamReport{Rows: rows}, nil
}

// Workload builds the open-task estimate per user. With a user filter the
// named user is reported even at zero tasks; otherwise users with no open
// tasks are dropped. Rows are ordered by total estimated minutes
// descending, ties keeping directory order.
func (s *ReportService) Workload(userFilter *string) (*report.WorkloadReport, error) {
	var users []models.User
	if userFilter != nil {
		user, err := s.userRepo.FindByName(*userFilter)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, taskerr.NotFound("User '%s' not found", *userFilter)
			}
			return nil, taskerr.Storage(err, "failed to find user")
		}
		users = []models.User{*user}
	} else {
		var err error
		users, err = s.userRepo.List()
		if err != nil {
			return nil, taskerr.Storage(err, "failed to list users")
		}
	}

	openTasks, err := s.taskRepo.List(repository.TaskFilter{
		Action:   models.ActionTask,
		Statuses: models.OpenStatuses,
	})
	if err != nil {
		return nil, taskerr.Storage(err, "failed to query tasks")
	}

	rows := make([]report.WorkloadRow, 0, len(users))
	for _, user := range users {
		var taskCount, totalMinutes int64
		for _, task := range openTasks {
			if task.AssigneeID == nil || *task.AssigneeID != user.ID {
				continue
			}
			taskCount++
			if task.EstimateMinutes != nil {
				totalMinutes += *task.EstimateMinutes
			}
		}

		if taskCount == 0 && userFilter == nil {
			continue
		}

		rows = append(rows, report.WorkloadRow{
			UserID:       user.ID,
			UserName:     user.Name,
			DisplayName:  user.Display(),
			TaskCount:    taskCount,
			TotalMinutes: totalMinutes,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalMinutes > rows[j].TotalMinutes
	})

	return &report.WorkloadReport{Rows: rows}, nil
}

// Stats builds completion, overdue and status-breakdown counters over a
// lookback window of whole days. A day is a fixed 86400 seconds.
func (s *ReportService) Stats(days int64) (*report.StatsReport, error) {
	now := s.now().Unix()
	cutoff := now - days*86400

	tasks, err := s.taskRepo.List(repository.TaskFilter{Action: models.ActionTask})
	if err != nil {
		return nil, taskerr.Storage(err, "failed to query tasks")
	}

	stats := &report.StatsReport{PeriodDays: days}

	for _, task := range tasks {
		if task.CreateTime >= cutoff {
			stats.Created++
			if task.Status.IsDone() {
				stats.Completed++
			}
		}

		if task.Status.IsOpen() {
			if task.TargetTime != nil && *task.TargetTime < now {
				stats.Overdue++
			}
			// Priority 0 is the highest urgency level.
			if task.Priority != nil && *task.Priority == 0 {
				stats.HighPriority++
			}
		}

		switch task.Status {
		case models.StatusOngoing:
			stats.Ongoing++
		case models.StatusPending:
			stats.Pending++
		case models.StatusSuspended:
			stats.Suspended++
		case models.StatusDone:
			stats.Done++
		case models.StatusCancelled:
			stats.Cancelled++
		}
	}

	if stats.Created > 0 {
		stats.CompletionRate = stats.Completed * 100 / stats.Created
	}

	return stats, nil
}
