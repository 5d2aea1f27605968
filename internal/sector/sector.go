package sector

import (
	"errors"
	"time"

	"github.com/ankaahq/ankaa-access/internal/authz"
	sectorDatamodel "github.com/ankaahq/ankaa-access/internal/core/datamodel/sector"
)

// Sector is an organizational unit: a production line, the warehouse, an
// office team. Its privilege value drives every permission decision for the
// users who belong to it.
type Sector struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Privileges authz.Privilege `json:"privileges"`
	ManagerID  *int64          `json:"manager_id,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

var (
	ErrNotFound          = errors.New("sector not found")
	ErrInvalidPrivilege  = errors.New("invalid privilege value")
	ErrDuplicateName     = errors.New("sector name already exists")
)

// Access returns the authorization view of the sector.
func (s *Sector) Access() *authz.Sector {
	if s == nil {
		return nil
	}
	return &authz.Sector{
		ID:         s.ID,
		Name:       s.Name,
		Privileges: s.Privileges,
	}
}

func NewSector(name string, privileges authz.Privilege) *Sector {
	now := time.Now()
	return &Sector{
		Name:       name,
		Privileges: privileges,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// ValidPrivilege reports whether the value is a known privilege.
func ValidPrivilege(p authz.Privilege) bool {
	for _, known := range authz.AllPrivileges {
		if known == p {
			return true
		}
	}
	return false
}

func ToDataModel(s *Sector) *sectorDatamodel.Sector {
	return &sectorDatamodel.Sector{
		ID:        s.ID,
		Name:      s.Name,
		Privileges: string(s.Privileges),
		ManagerID: s.ManagerID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func FromDataModel(dm *sectorDatamodel.Sector) *Sector {
	return &Sector{
		ID:         dm.ID,
		Name:       dm.Name,
		Privileges: authz.Privilege(dm.Privileges),
		ManagerID:  dm.ManagerID,
		CreatedAt:  dm.CreatedAt,
		UpdatedAt:  dm.UpdatedAt,
	}
}
