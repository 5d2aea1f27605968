package serviceorder

import (
	"context"
	"log/slog"

	"github.com/ankaahq/ankaa-access/internal/auth"
	"github.com/ankaahq/ankaa-access/internal/authz"
	"github.com/ankaahq/ankaa-access/internal/core/events"
	orderDatamodel "github.com/ankaahq/ankaa-access/internal/core/datamodel/serviceorder"
)

// Repository defines the data access methods for service orders.
type Repository interface {
	Create(order *orderDatamodel.ServiceOrder) error
	GetByID(id int64) (*orderDatamodel.ServiceOrder, error)
	ListByTypes(types []authz.ServiceOrderType, limit, offset int) ([]*orderDatamodel.ServiceOrder, error)
	CountByTypes(types []authz.ServiceOrderType) (int, error)
	Update(order *orderDatamodel.ServiceOrder) error
	TaskSectorID(orderID int64) (*int64, error)
}

// EventPublisher is the slice of the event bus the service needs.
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

// Create opens a new service order. The creator must hold edit rights on the
// order's type.
func (s *Service) Create(ctx context.Context, user *auth.User, dto CreateServiceOrderDTO) (*ServiceOrder, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	access := user.Access()
	if !authz.CanEditServiceOrderOfType(access, dto.Type) {
		s.logger.Warn("service order creation denied",
			"user_id", userID(user), "type", dto.Type)
		return nil, ErrUnauthorized
	}

	order := NewServiceOrder(user.ID, dto)
	dm := ToDataModel(order)
	if err := s.repo.Create(dm); err != nil {
		s.logger.Error("failed to create service order", "error", err, "user_id", user.ID)
		return nil, err
	}
	order.ID = dm.ID

	s.logger.Info("service order created",
		"order_id", order.ID, "type", order.Type, "user_id", user.ID)
	return order, nil
}

// GetByID returns the order when its type is visible to the user.
func (s *Service) GetByID(user *auth.User, id int64) (*ServiceOrder, error) {
	dm, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if dm == nil {
		return nil, ErrNotFound
	}

	order := FromDataModel(dm)
	if !authz.CanViewServiceOrderType(user.Access(), order.Type) {
		s.logger.Warn("service order view denied",
			"order_id", id, "user_id", userID(user), "type", order.Type)
		return nil, ErrNotFound
	}
	return order, nil
}

// List returns the orders of every type visible to the user. Filtering
// happens in the query, not after the fact.
func (s *Service) List(user *auth.User, limit, offset int) (*ServiceOrderListResponse, error) {
	visible := authz.VisibleServiceOrderTypes(user.Access())

	rows, err := s.repo.ListByTypes(visible, limit, offset)
	if err != nil {
		s.logger.Error("failed to list service orders", "error", err, "user_id", userID(user))
		return nil, err
	}

	total, err := s.repo.CountByTypes(visible)
	if err != nil {
		return nil, err
	}

	orders := make([]*ServiceOrder, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, FromDataModel(row))
	}
	return &ServiceOrderListResponse{Orders: orders, Total: total}, nil
}

// AllowedStatuses returns the statuses the user may move the order into.
func (s *Service) AllowedStatuses(user *auth.User, orderID int64) (*AllowedStatusesResponse, error) {
	order, err := s.GetByID(user, orderID)
	if err != nil {
		return nil, err
	}

	statuses := authz.AllowedServiceOrderStatuses(user.Access(), order.Type, order.Status)
	if statuses == nil {
		statuses = []authz.ServiceOrderStatus{}
	}
	return &AllowedStatusesResponse{OrderID: orderID, Statuses: statuses}, nil
}

// UpdateStatus moves the order into a new status after checking the full
// permission chain: type edit rights, leader sector scope, and the per-user
// status matrix.
func (s *Service) UpdateStatus(ctx context.Context, user *auth.User, orderID int64, dto UpdateStatusDTO) (*ServiceOrder, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	dm, err := s.repo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if dm == nil {
		return nil, ErrNotFound
	}
	order := FromDataModel(dm)

	access := user.Access()
	if !authz.CanEditServiceOrderOfType(access, order.Type) {
		return nil, ErrUnauthorized
	}

	// A leader without the type's privilege only edits production orders of
	// their own sector, and never orders whose task has no sector.
	if !hasTypePrivilege(access, order.Type) {
		taskSectorID, err := s.repo.TaskSectorID(orderID)
		if err != nil {
			return nil, err
		}
		if !authz.CanLeaderUpdateServiceOrder(access, taskSectorID) {
			s.logger.Warn("leader sector scope rejected service order update",
				"order_id", orderID, "user_id", user.ID)
			return nil, ErrUnauthorized
		}
	}

	if order.IsClosed() {
		return nil, ErrOrderClosed
	}

	if !statusAllowed(access, order.Type, order.Status, dto.Status) {
		s.logger.Warn("status transition denied",
			"order_id", orderID, "user_id", user.ID,
			"from", order.Status, "to", dto.Status)
		return nil, ErrForbiddenStatus
	}

	from := order.Status
	order.MoveTo(dto.Status)

	if err := s.repo.Update(ToDataModel(order)); err != nil {
		s.logger.Error("failed to update service order status", "error", err, "order_id", orderID)
		return nil, err
	}

	s.publish(ctx, events.NewServiceOrderStatusChangedEvent(
		order.ID, derefTaskID(order.TaskID), string(order.Type),
		string(from), string(order.Status), user.ID,
	))

	s.logger.Info("service order status changed",
		"order_id", order.ID, "from", from, "to", order.Status, "user_id", user.ID)
	return order, nil
}

// Cancel closes the order. Administrators only.
func (s *Service) Cancel(ctx context.Context, user *auth.User, orderID int64) (*ServiceOrder, error) {
	access := user.Access()
	if !authz.CanCancelServiceOrder(access) {
		return nil, ErrUnauthorized
	}

	dm, err := s.repo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if dm == nil {
		return nil, ErrNotFound
	}
	order := FromDataModel(dm)

	if order.IsClosed() {
		return nil, ErrOrderClosed
	}

	order.MoveTo(authz.StatusCancelled)
	if err := s.repo.Update(ToDataModel(order)); err != nil {
		s.logger.Error("failed to cancel service order", "error", err, "order_id", orderID)
		return nil, err
	}

	s.publish(ctx, events.NewServiceOrderCancelledEvent(
		order.ID, derefTaskID(order.TaskID), string(order.Type), user.ID,
	))

	s.logger.Info("service order cancelled", "order_id", order.ID, "user_id", user.ID)
	return order, nil
}

// ApproveArtwork completes an artwork order waiting for approval.
func (s *Service) ApproveArtwork(ctx context.Context, user *auth.User, orderID int64) (*ServiceOrder, error) {
	access := user.Access()
	if !authz.CanCompleteArtworkServiceOrder(access) {
		return nil, ErrUnauthorized
	}

	dm, err := s.repo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if dm == nil {
		return nil, ErrNotFound
	}
	order := FromDataModel(dm)

	if order.Type != authz.ServiceOrderArtwork {
		return nil, ErrInvalidType
	}
	if order.Status != authz.StatusWaitingApprove {
		return nil, ErrInvalidStatus
	}

	from := order.Status
	order.MoveTo(authz.StatusCompleted)
	if err := s.repo.Update(ToDataModel(order)); err != nil {
		s.logger.Error("failed to approve artwork order", "error", err, "order_id", orderID)
		return nil, err
	}

	s.publish(ctx, events.NewServiceOrderStatusChangedEvent(
		order.ID, derefTaskID(order.TaskID), string(order.Type),
		string(from), string(order.Status), user.ID,
	))

	s.logger.Info("artwork order approved", "order_id", order.ID, "user_id", user.ID)
	return order, nil
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish event", "event_type", event.EventType(), "error", err)
	}
}

// hasTypePrivilege reports whether the user's own privilege covers the type,
// leadership aside.
func hasTypePrivilege(u *authz.User, t authz.ServiceOrderType) bool {
	if authz.HasAnyPrivilege(u, authz.PrivilegeAdmin) {
		return true
	}
	switch t {
	case authz.ServiceOrderProduction:
		return authz.HasAnyPrivilege(u, authz.PrivilegeProduction)
	case authz.ServiceOrderFinancial:
		return authz.HasAnyPrivilege(u, authz.PrivilegeFinancial)
	case authz.ServiceOrderCommercial:
		return authz.HasAnyPrivilege(u, authz.PrivilegeCommercial)
	case authz.ServiceOrderLogistic:
		return authz.HasAnyPrivilege(u, authz.PrivilegeLogistic)
	case authz.ServiceOrderArtwork:
		return authz.HasAnyPrivilege(u, authz.PrivilegeDesigner)
	default:
		return false
	}
}

func statusAllowed(u *authz.User, t authz.ServiceOrderType, current, next authz.ServiceOrderStatus) bool {
	for _, allowed := range authz.AllowedServiceOrderStatuses(u, t, current) {
		if allowed == next {
			return true
		}
	}
	return false
}

func derefTaskID(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}

func userID(u *auth.User) int64 {
	if u == nil {
		return 0
	}
	return u.ID
}
