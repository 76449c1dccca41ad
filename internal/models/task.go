package models

// TaskStatus is the stored numeric status code. The encoding is a wire
// contract shared with the item store and must not be renumbered.
type TaskStatus int

const (
	StatusOngoing   TaskStatus = 0
	StatusDone      TaskStatus = 1
	StatusCancelled TaskStatus = 2
	StatusSuspended TaskStatus = 4
	StatusPending   TaskStatus = 6
)

// OpenStatuses are the codes counted as open work. Cancelled tasks are
// neither open nor done.
var OpenStatuses = []TaskStatus{StatusOngoing, StatusSuspended, StatusPending}

func (s TaskStatus) IsOpen() bool {
	return s == StatusOngoing || s == StatusSuspended || s == StatusPending
}

func (s TaskStatus) IsDone() bool {
	return s == StatusDone
}

func (s TaskStatus) String() string {
	switch s {
	case StatusOngoing:
		return "ongoing"
	case StatusDone:
		return "done"
	case StatusCancelled:
		return "cancelled"
	case StatusSuspended:
		return "suspended"
	case StatusPending:
		return "pending"
	default:
		return "unknown"
	}
}

// ActionTask is the item-store action kind for task records.
const ActionTask = "task"

// Task mirrors a row of the item store. This subsystem only ever reads it:
// creation and status transitions happen elsewhere. Time fields are epoch
// seconds as stored.
type Task struct {
	ID              uint64     `gorm:"primarykey" json:"id"`
	Action          string     `gorm:"type:varchar(20);not null;default:'task'" json:"action"`
	Title           string     `gorm:"not null" json:"title"`
	Status          TaskStatus `gorm:"not null;default:0" json:"status"`
	OwnerID         uint64     `gorm:"not null" json:"owner_id"`
	AssigneeID      *uint64    `json:"assignee_id,omitempty"`
	NamespaceID     uint64     `gorm:"not null" json:"namespace_id"`
	CreateTime      int64      `gorm:"not null" json:"create_time"`
	TargetTime      *int64     `json:"target_time,omitempty"`
	Priority        *int       `json:"priority,omitempty"`
	EstimateMinutes *int64     `json:"estimate_minutes,omitempty"`
}

func (Task) TableName() string {
	return "items"
}
