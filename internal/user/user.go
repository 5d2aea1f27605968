package user

import (
	"errors"
	"time"

	"github.com/ankaahq/ankaa-access/internal/authz"
	userDatamodel "github.com/ankaahq/ankaa-access/internal/core/datamodel/user"
)

// User is the domain user: identity plus the sector references authorization
// decisions resolve against.
type User struct {
	ID            int64         `json:"id"`
	Email         string        `json:"email"`
	Name          string        `json:"name"`
	PasswordHash  string        `json:"-"`
	IsActive      bool          `json:"is_active"`
	Sector        *authz.Sector `json:"sector,omitempty"`
	ManagedSector *authz.Sector `json:"managed_sector,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Access returns the authorization view of the user. Nil-safe so an absent
// user resolves to a fail-closed decision.
func (u *User) Access() *authz.User {
	if u == nil {
		return nil
	}
	return &authz.User{
		ID:            u.ID,
		Sector:        u.Sector,
		ManagedSector: u.ManagedSector,
	}
}

func (u *User) IsTeamLeader() bool {
	return authz.IsTeamLeader(u.Access())
}

func (u *User) IsActiveUser() bool {
	return u != nil && u.IsActive
}

var ErrNotFound = errors.New("user not found")

func ToDataModel(u *User) *userDatamodel.User {
	dm := &userDatamodel.User{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
	if u.Sector != nil {
		id := u.Sector.ID
		dm.SectorID = &id
	}
	return dm
}

func FromDataModel(dm *userDatamodel.User) *User {
	return &User{
		ID:           dm.ID,
		Email:        dm.Email,
		Name:         dm.Name,
		PasswordHash: dm.PasswordHash,
		IsActive:     dm.IsActive,
		CreatedAt:    dm.CreatedAt,
		UpdatedAt:    dm.UpdatedAt,
	}
}

// FromDataModelWithSectors attaches the resolved sector references. Either
// sector may be nil.
func FromDataModelWithSectors(dm *userDatamodel.User, sector, managed *authz.Sector) *User {
	domainUser := FromDataModel(dm)
	domainUser.Sector = sector
	domainUser.ManagedSector = managed
	return domainUser
}
