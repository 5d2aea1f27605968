package task

import (
	"errors"
	"time"

	"github.com/ankaahq/ankaa-access/internal/authz"
	taskDatamodel "github.com/ankaahq/ankaa-access/internal/core/datamodel/task"
)

// Task is a production job. It may start without a sector; a team leader
// claims it by starting it, which pins it to their managed sector.
type Task struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Status       TaskStatus `json:"status"`
	SectorID     *int64     `json:"sector_id,omitempty"`
	CustomerID   *int64     `json:"customer_id,omitempty"`
	HasLayout    bool       `json:"has_layout"`
	CutRequested bool       `json:"cut_requested"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusFinished   TaskStatus = "FINISHED"
)

var (
	ErrNotFound        = errors.New("task not found")
	ErrUnauthorized    = errors.New("not allowed for this task")
	ErrAlreadyStarted  = errors.New("task already started")
	ErrAlreadyFinished = errors.New("task already finished")
	ErrNotStarted      = errors.New("task not started")
	ErrCutRequested    = errors.New("cut already requested")
)

// Start moves the task into progress. When the task has no sector yet and a
// leader starts it, the task is claimed into the leader's managed sector.
func (t *Task) Start(sectorID *int64) {
	now := time.Now()
	t.Status = TaskStatusInProgress
	t.StartedAt = &now
	t.UpdatedAt = now
	if t.SectorID == nil && sectorID != nil {
		t.SectorID = sectorID
	}
}

func (t *Task) Finish() {
	now := time.Now()
	t.Status = TaskStatusFinished
	t.FinishedAt = &now
	t.UpdatedAt = now
}

func (t *Task) IsStarted() bool {
	return t.Status != TaskStatusPending
}

func (t *Task) IsFinished() bool {
	return t.Status == TaskStatusFinished
}

// CanBeManagedBy reports whether the user may mutate this task.
func (t *Task) CanBeManagedBy(u *authz.User) bool {
	if authz.HasAnyPrivilege(u, authz.PrivilegeAdmin, authz.PrivilegeProduction) {
		return true
	}
	return authz.CanLeaderManageTask(u, t.SectorID)
}

func ToDataModel(t *Task) *taskDatamodel.Task {
	return &taskDatamodel.Task{
		ID:           t.ID,
		Name:         t.Name,
		Status:       string(t.Status),
		SectorID:     t.SectorID,
		CustomerID:   t.CustomerID,
		HasLayout:    t.HasLayout,
		CutRequested: t.CutRequested,
		StartedAt:    t.StartedAt,
		FinishedAt:   t.FinishedAt,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func FromDataModel(dm *taskDatamodel.Task) *Task {
	return &Task{
		ID:           dm.ID,
		Name:         dm.Name,
		Status:       TaskStatus(dm.Status),
		SectorID:     dm.SectorID,
		CustomerID:   dm.CustomerID,
		HasLayout:    dm.HasLayout,
		CutRequested: dm.CutRequested,
		StartedAt:    dm.StartedAt,
		FinishedAt:   dm.FinishedAt,
		CreatedAt:    dm.CreatedAt,
		UpdatedAt:    dm.UpdatedAt,
	}
}
