package serviceorder

import (
	"github.com/ankaahq/ankaa-access/internal/authz"
	"github.com/ankaahq/ankaa-access/internal/core/common/validation"
)

type CreateServiceOrderDTO struct {
	TaskID      *int64                 `json:"task_id,omitempty"`
	Type        authz.ServiceOrderType `json:"type"`
	Description string                 `json:"description"`
	SectorID    *int64                 `json:"sector_id,omitempty"`
}

func (d CreateServiceOrderDTO) Validate() error {
	if !ValidType(d.Type) {
		return ErrInvalidType
	}
	if err := validation.ValidateOrderDescription(d.Description); err != nil {
		return ValidationError{Msg: err.GetDetailedMessage()}
	}
	return nil
}

type UpdateStatusDTO struct {
	Status authz.ServiceOrderStatus `json:"status"`
}

func (d UpdateStatusDTO) Validate() error {
	if !ValidStatus(d.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// AllowedStatusesResponse tells the client which transitions to offer.
type AllowedStatusesResponse struct {
	OrderID  int64                      `json:"order_id"`
	Statuses []authz.ServiceOrderStatus `json:"statuses"`
}

type ServiceOrderListResponse struct {
	Orders []*ServiceOrder `json:"orders"`
	Total  int             `json:"total"`
}

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }
