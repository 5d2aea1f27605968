package sector

import (
	"github.com/ankaahq/ankaa-access/internal/authz"
	"github.com/ankaahq/ankaa-access/internal/core/common/validation"
)

type SectorResponse struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Privileges authz.Privilege `json:"privileges"`
	ManagerID  *int64          `json:"manager_id,omitempty"`
}

type SectorsResponse struct {
	Sectors []SectorResponse `json:"sectors"`
}

type CreateSectorDTO struct {
	Name       string          `json:"name"`
	Privileges authz.Privilege `json:"privileges"`
	ManagerID  *int64          `json:"manager_id,omitempty"`
}

type UpdateSectorDTO struct {
	Name       *string          `json:"name,omitempty"`
	Privileges *authz.Privilege `json:"privileges,omitempty"`
	ManagerID  *int64           `json:"manager_id,omitempty"`
}

func (s *Sector) ToResponse() SectorResponse {
	return SectorResponse{
		ID:         s.ID,
		Name:       s.Name,
		Privileges: s.Privileges,
		ManagerID:  s.ManagerID,
	}
}

func (d CreateSectorDTO) Validate() error {
	if err := validation.ValidateSectorName(d.Name); err != nil {
		return ValidationError{Msg: err.GetDetailedMessage()}
	}
	if !ValidPrivilege(d.Privileges) {
		return ErrInvalidPrivilege
	}
	return nil
}

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }
