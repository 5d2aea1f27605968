package task

import "github.com/ankaahq/ankaa-access/internal/core/common/validation"

type CreateTaskDTO struct {
	Name       string `json:"name"`
	SectorID   *int64 `json:"sector_id,omitempty"`
	CustomerID *int64 `json:"customer_id,omitempty"`
}

func (d CreateTaskDTO) Validate() error {
	if err := validation.ValidateTaskName(d.Name); err != nil {
		return ValidationError{Msg: err.GetDetailedMessage()}
	}
	return nil
}

type UpdateLayoutDTO struct {
	HasLayout bool `json:"has_layout"`
}

type TaskListResponse struct {
	Tasks []*Task `json:"tasks"`
	Total int     `json:"total"`
}

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }
