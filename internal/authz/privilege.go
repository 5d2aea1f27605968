package authz

// Privilege is the single privilege category carried by a sector. Every user
// belongs to at most one sector, so every user resolves to at most one
// privilege at a time.
type Privilege string

const (
	PrivilegeAdmin          Privilege = "ADMIN"
	PrivilegeCommercial     Privilege = "COMMERCIAL"
	PrivilegeDesigner       Privilege = "DESIGNER"
	PrivilegeFinancial      Privilege = "FINANCIAL"
	PrivilegeLogistic       Privilege = "LOGISTIC"
	PrivilegeProduction     Privilege = "PRODUCTION"
	PrivilegeWarehouse      Privilege = "WAREHOUSE"
	PrivilegeHumanResources Privilege = "HUMAN_RESOURCES"
	PrivilegeMaintenance    Privilege = "MAINTENANCE"
	PrivilegeBasic          Privilege = "BASIC"
	PrivilegeExternal       Privilege = "EXTERNAL"
	PrivilegePlotting       Privilege = "PLOTTING"
)

// AllPrivileges lists every privilege value. Used by tests and by the seeder.
var AllPrivileges = []Privilege{
	PrivilegeAdmin,
	PrivilegeCommercial,
	PrivilegeDesigner,
	PrivilegeFinancial,
	PrivilegeLogistic,
	PrivilegeProduction,
	PrivilegeWarehouse,
	PrivilegeHumanResources,
	PrivilegeMaintenance,
	PrivilegeBasic,
	PrivilegeExternal,
	PrivilegePlotting,
}

// Sector is an organizational unit. Its Privileges value is what every
// permission decision keys on.
type Sector struct {
	ID         int64
	Name       string
	Privileges Privilege
}

// User is the authorization view of a user: the sector they belong to and,
// when they lead one, the sector they manage. Both references are optional;
// a user without a sector carries no privilege at all.
type User struct {
	ID            int64
	Sector        *Sector
	ManagedSector *Sector
}

// IsTeamLeader reports whether the user manages a sector. Leadership is
// derived from the managed-sector relationship, never from a privilege value.
func IsTeamLeader(u *User) bool {
	return u != nil && u.ManagedSector != nil
}

// HasAnyPrivilege reports whether the user's sector privilege is one of the
// given privileges. A nil user or a user without a sector has no privilege.
func HasAnyPrivilege(u *User, privileges ...Privilege) bool {
	if u == nil || u.Sector == nil {
		return false
	}
	for _, p := range privileges {
		if u.Sector.Privileges == p {
			return true
		}
	}
	return false
}
