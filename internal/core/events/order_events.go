package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeServiceOrderStatusChanged = "service_order.status_changed"
	EventTypeServiceOrderCancelled     = "service_order.cancelled"
	EventTypeTaskClaimed               = "task.claimed"
)

type ServiceOrderStatusChangedEvent struct {
	BaseEvent
	OrderID    int64  `json:"order_id"`
	TaskID     int64  `json:"task_id"`
	OrderType  string `json:"order_type"`
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
	ChangedBy  int64  `json:"changed_by"`
}

func NewServiceOrderStatusChangedEvent(orderID, taskID int64, orderType, fromStatus, toStatus string, changedBy int64) *ServiceOrderStatusChangedEvent {
	return &ServiceOrderStatusChangedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeServiceOrderStatusChanged,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"order_id":    orderID,
				"task_id":     taskID,
				"order_type":  orderType,
				"from_status": fromStatus,
				"to_status":   toStatus,
				"changed_by":  changedBy,
			},
		},
		OrderID:    orderID,
		TaskID:     taskID,
		OrderType:  orderType,
		FromStatus: fromStatus,
		ToStatus:   toStatus,
		ChangedBy:  changedBy,
	}
}

type ServiceOrderCancelledEvent struct {
	BaseEvent
	OrderID     int64  `json:"order_id"`
	TaskID      int64  `json:"task_id"`
	OrderType   string `json:"order_type"`
	CancelledBy int64  `json:"cancelled_by"`
}

func NewServiceOrderCancelledEvent(orderID, taskID int64, orderType string, cancelledBy int64) *ServiceOrderCancelledEvent {
	return &ServiceOrderCancelledEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeServiceOrderCancelled,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"order_id":     orderID,
				"task_id":      taskID,
				"order_type":   orderType,
				"cancelled_by": cancelledBy,
			},
		},
		OrderID:     orderID,
		TaskID:      taskID,
		OrderType:   orderType,
		CancelledBy: cancelledBy,
	}
}

type TaskClaimedEvent struct {
	BaseEvent
	TaskID    int64 `json:"task_id"`
	SectorID  int64 `json:"sector_id"`
	ClaimedBy int64 `json:"claimed_by"`
}

func NewTaskClaimedEvent(taskID, sectorID, claimedBy int64) *TaskClaimedEvent {
	return &TaskClaimedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeTaskClaimed,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"task_id":    taskID,
				"sector_id":  sectorID,
				"claimed_by": claimedBy,
			},
		},
		TaskID:    taskID,
		SectorID:  sectorID,
		ClaimedBy: claimedBy,
	}
}
