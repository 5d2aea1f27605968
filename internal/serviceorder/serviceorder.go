package serviceorder

import (
	"errors"
	"time"

	"github.com/ankaahq/ankaa-access/internal/authz"
	orderDatamodel "github.com/ankaahq/ankaa-access/internal/core/datamodel/serviceorder"
)

// ServiceOrder is a unit of work attached to a task: produce it, invoice it,
// ship it, draw its artwork. Type decides which team is responsible and
// therefore who may see and edit the order.
type ServiceOrder struct {
	ID          int64                    `json:"id"`
	TaskID      *int64                   `json:"task_id,omitempty"`
	Type        authz.ServiceOrderType   `json:"type"`
	Status      authz.ServiceOrderStatus `json:"status"`
	Description string                   `json:"description"`
	SectorID    *int64                   `json:"sector_id,omitempty"`
	CreatedByID int64                    `json:"created_by_id"`
	CompletedAt *time.Time               `json:"completed_at,omitempty"`
	CancelledAt *time.Time               `json:"cancelled_at,omitempty"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

var (
	ErrNotFound        = errors.New("service order not found")
	ErrUnauthorized    = errors.New("not allowed for this service order")
	ErrForbiddenStatus = errors.New("status not allowed for this user")
	ErrInvalidType     = errors.New("invalid service order type")
	ErrInvalidStatus   = errors.New("invalid service order status")
	ErrOrderClosed     = errors.New("service order already completed or cancelled")
)

func (o *ServiceOrder) IsClosed() bool {
	return o.Status == authz.StatusCompleted || o.Status == authz.StatusCancelled
}

func (o *ServiceOrder) MoveTo(status authz.ServiceOrderStatus) {
	now := time.Now()
	o.Status = status
	o.UpdatedAt = now
	switch status {
	case authz.StatusCompleted:
		o.CompletedAt = &now
	case authz.StatusCancelled:
		o.CancelledAt = &now
	}
}

// ValidType reports whether the value is a known service-order type.
func ValidType(t authz.ServiceOrderType) bool {
	for _, known := range authz.AllServiceOrderTypes {
		if known == t {
			return true
		}
	}
	return false
}

// ValidStatus reports whether the value is a known workflow status.
func ValidStatus(s authz.ServiceOrderStatus) bool {
	for _, known := range authz.AllServiceOrderStatuses {
		if known == s {
			return true
		}
	}
	return false
}

func NewServiceOrder(createdByID int64, dto CreateServiceOrderDTO) *ServiceOrder {
	now := time.Now()
	return &ServiceOrder{
		TaskID:      dto.TaskID,
		Type:        dto.Type,
		Status:      authz.StatusPending,
		Description: dto.Description,
		SectorID:    dto.SectorID,
		CreatedByID: createdByID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func ToDataModel(o *ServiceOrder) *orderDatamodel.ServiceOrder {
	return &orderDatamodel.ServiceOrder{
		ID:          o.ID,
		TaskID:      o.TaskID,
		Type:        string(o.Type),
		Status:      string(o.Status),
		Description: o.Description,
		SectorID:    o.SectorID,
		CreatedByID: o.CreatedByID,
		CompletedAt: o.CompletedAt,
		CancelledAt: o.CancelledAt,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func FromDataModel(dm *orderDatamodel.ServiceOrder) *ServiceOrder {
	return &ServiceOrder{
		ID:          dm.ID,
		TaskID:      dm.TaskID,
		Type:        authz.ServiceOrderType(dm.Type),
		Status:      authz.ServiceOrderStatus(dm.Status),
		Description: dm.Description,
		SectorID:    dm.SectorID,
		CreatedByID: dm.CreatedByID,
		CompletedAt: dm.CompletedAt,
		CancelledAt: dm.CancelledAt,
		CreatedAt:   dm.CreatedAt,
		UpdatedAt:   dm.UpdatedAt,
	}
}
