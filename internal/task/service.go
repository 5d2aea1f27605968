package task

import (
	"context"
	"log/slog"
	"time"

	"github.com/ankaahq/ankaa-access/internal/auth"
	"github.com/ankaahq/ankaa-access/internal/authz"
	taskDatamodel "github.com/ankaahq/ankaa-access/internal/core/datamodel/task"
	"github.com/ankaahq/ankaa-access/internal/core/events"
)

type Repository interface {
	Create(t *taskDatamodel.Task) error
	GetByID(id int64) (*taskDatamodel.Task, error)
	List(limit, offset int) ([]*taskDatamodel.Task, error)
	Count() (int, error)
	Update(t *taskDatamodel.Task) error
	Delete(id int64) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type Service struct {
	repo      Repository
	publisher EventPublisher
	logger    *slog.Logger
}

func NewService(repo Repository, publisher EventPublisher, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *Service) Create(user *auth.User, dto CreateTaskDTO) (*Task, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if !authz.CanCreateTasks(user.Access()) {
		return nil, ErrUnauthorized
	}

	now := time.Now()
	t := &Task{
		Name:       dto.Name,
		Status:     TaskStatusPending,
		SectorID:   dto.SectorID,
		CustomerID: dto.CustomerID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	dm := ToDataModel(t)
	if err := s.repo.Create(dm); err != nil {
		s.logger.Error("failed to create task", "error", err)
		return nil, err
	}
	t.ID = dm.ID

	s.logger.Info("task created", "task_id", t.ID, "user_id", user.ID)
	return t, nil
}

func (s *Service) GetByID(id int64) (*Task, error) {
	dm, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if dm == nil {
		return nil, ErrNotFound
	}
	return FromDataModel(dm), nil
}

func (s *Service) List(limit, offset int) (*TaskListResponse, error) {
	rows, err := s.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count()
	if err != nil {
		return nil, err
	}

	tasks := make([]*Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, FromDataModel(row))
	}
	return &TaskListResponse{Tasks: tasks, Total: total}, nil
}

// Start begins work on a task. Privileged users start any task; a leader may
// start tasks in their managed sector, and claiming an unassigned task pins
// it to that sector.
func (s *Service) Start(ctx context.Context, user *auth.User, taskID int64) (*Task, error) {
	t, err := s.GetByID(taskID)
	if err != nil {
		return nil, err
	}

	access := user.Access()
	if !t.CanBeManagedBy(access) {
		s.logger.Warn("task start denied", "task_id", taskID, "user_id", userID(user))
		return nil, ErrUnauthorized
	}
	if t.IsFinished() {
		return nil, ErrAlreadyFinished
	}
	if t.IsStarted() {
		return nil, ErrAlreadyStarted
	}

	var claimSector *int64
	if authz.IsTeamLeader(access) {
		id := access.ManagedSector.ID
		claimSector = &id
	}
	claimed := t.SectorID == nil && claimSector != nil
	t.Start(claimSector)

	if err := s.repo.Update(ToDataModel(t)); err != nil {
		s.logger.Error("failed to start task", "error", err, "task_id", taskID)
		return nil, err
	}

	if claimed && t.SectorID != nil {
		s.publish(ctx, events.NewTaskClaimedEvent(t.ID, *t.SectorID, user.ID))
	}

	s.logger.Info("task started", "task_id", t.ID, "user_id", user.ID, "claimed", claimed)
	return t, nil
}

func (s *Service) Finish(ctx context.Context, user *auth.User, taskID int64) (*Task, error) {
	t, err := s.GetByID(taskID)
	if err != nil {
		return nil, err
	}

	if !t.CanBeManagedBy(user.Access()) {
		s.logger.Warn("task finish denied", "task_id", taskID, "user_id", userID(user))
		return nil, ErrUnauthorized
	}
	if t.IsFinished() {
		return nil, ErrAlreadyFinished
	}
	if !t.IsStarted() {
		return nil, ErrNotStarted
	}

	t.Finish()
	if err := s.repo.Update(ToDataModel(t)); err != nil {
		s.logger.Error("failed to finish task", "error", err, "task_id", taskID)
		return nil, err
	}

	s.logger.Info("task finished", "task_id", t.ID, "user_id", user.ID)
	return t, nil
}

// RequestCut flags the task for the cutting machine queue.
func (s *Service) RequestCut(ctx context.Context, user *auth.User, taskID int64) (*Task, error) {
	t, err := s.GetByID(taskID)
	if err != nil {
		return nil, err
	}

	if !authz.CanRequestCutForTask(user.Access(), t.SectorID) {
		s.logger.Warn("cut request denied", "task_id", taskID, "user_id", userID(user))
		return nil, ErrUnauthorized
	}
	if t.CutRequested {
		return nil, ErrCutRequested
	}

	t.CutRequested = true
	t.UpdatedAt = time.Now()
	if err := s.repo.Update(ToDataModel(t)); err != nil {
		s.logger.Error("failed to request cut", "error", err, "task_id", taskID)
		return nil, err
	}

	s.logger.Info("cut requested", "task_id", t.ID, "user_id", user.ID)
	return t, nil
}

// UpdateLayout toggles the layout flag on the task.
func (s *Service) UpdateLayout(ctx context.Context, user *auth.User, taskID int64, dto UpdateLayoutDTO) (*Task, error) {
	t, err := s.GetByID(taskID)
	if err != nil {
		return nil, err
	}

	if !authz.CanEditLayoutForTask(user.Access(), t.SectorID) {
		s.logger.Warn("layout update denied", "task_id", taskID, "user_id", userID(user))
		return nil, ErrUnauthorized
	}

	t.HasLayout = dto.HasLayout
	t.UpdatedAt = time.Now()
	if err := s.repo.Update(ToDataModel(t)); err != nil {
		s.logger.Error("failed to update layout", "error", err, "task_id", taskID)
		return nil, err
	}

	return t, nil
}

func (s *Service) Delete(user *auth.User, taskID int64) error {
	if !authz.CanDeleteTasks(user.Access()) {
		return ErrUnauthorized
	}
	t, err := s.GetByID(taskID)
	if err != nil {
		return err
	}
	return s.repo.Delete(t.ID)
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish event", "event_type", event.EventType(), "error", err)
	}
}

func userID(u *auth.User) int64 {
	if u == nil {
		return 0
	}
	return u.ID
}
