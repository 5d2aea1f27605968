package authz

// ServiceOrderType classifies a service order by the team that executes it.
type ServiceOrderType string

const (
	ServiceOrderProduction ServiceOrderType = "PRODUCTION"
	ServiceOrderFinancial  ServiceOrderType = "FINANCIAL"
	ServiceOrderCommercial ServiceOrderType = "COMMERCIAL"
	ServiceOrderLogistic   ServiceOrderType = "LOGISTIC"
	ServiceOrderArtwork    ServiceOrderType = "ARTWORK"
)

// AllServiceOrderTypes lists every service-order type.
var AllServiceOrderTypes = []ServiceOrderType{
	ServiceOrderProduction,
	ServiceOrderFinancial,
	ServiceOrderCommercial,
	ServiceOrderLogistic,
	ServiceOrderArtwork,
}

// ServiceOrderStatus is the workflow status of a service order.
// WAITING_APPROVE only occurs on ARTWORK orders, where a designer submits
// work and an administrator approves it.
type ServiceOrderStatus string

const (
	StatusPending        ServiceOrderStatus = "PENDING"
	StatusInProgress     ServiceOrderStatus = "IN_PROGRESS"
	StatusWaitingApprove ServiceOrderStatus = "WAITING_APPROVE"
	StatusCompleted      ServiceOrderStatus = "COMPLETED"
	StatusCancelled      ServiceOrderStatus = "CANCELLED"
)

// AllServiceOrderStatuses lists every workflow status.
var AllServiceOrderStatuses = []ServiceOrderStatus{
	StatusPending,
	StatusInProgress,
	StatusWaitingApprove,
	StatusCompleted,
	StatusCancelled,
}

// VisibleServiceOrderTypes returns the service-order types the user may see.
// Administrators see everything; each office privilege sees its own type plus
// production; everyone else sees production only.
func VisibleServiceOrderTypes(u *User) []ServiceOrderType {
	if u == nil || u.Sector == nil {
		return []ServiceOrderType{ServiceOrderProduction}
	}

	switch u.Sector.Privileges {
	case PrivilegeAdmin:
		return append([]ServiceOrderType(nil), AllServiceOrderTypes...)
	case PrivilegeFinancial:
		return []ServiceOrderType{ServiceOrderFinancial, ServiceOrderProduction}
	case PrivilegeCommercial:
		return []ServiceOrderType{ServiceOrderCommercial, ServiceOrderArtwork, ServiceOrderProduction}
	case PrivilegeDesigner:
		return []ServiceOrderType{ServiceOrderArtwork, ServiceOrderProduction}
	case PrivilegeLogistic:
		return []ServiceOrderType{ServiceOrderLogistic, ServiceOrderProduction}
	default:
		return []ServiceOrderType{ServiceOrderProduction}
	}
}

// CanViewServiceOrderType reports whether the type is visible to the user.
func CanViewServiceOrderType(u *User, t ServiceOrderType) bool {
	for _, visible := range VisibleServiceOrderTypes(u) {
		if visible == t {
			return true
		}
	}
	return false
}

// CanEditServiceOrderOfType reports whether the user may edit service orders
// of the given type. Each type has exactly one responsible privilege;
// production orders are additionally editable by team leaders.
func CanEditServiceOrderOfType(u *User, t ServiceOrderType) bool {
	if HasAnyPrivilege(u, PrivilegeAdmin) {
		return true
	}

	switch t {
	case ServiceOrderProduction:
		return HasAnyPrivilege(u, PrivilegeProduction) || IsTeamLeader(u)
	case ServiceOrderFinancial:
		return HasAnyPrivilege(u, PrivilegeFinancial)
	case ServiceOrderCommercial:
		return HasAnyPrivilege(u, PrivilegeCommercial)
	case ServiceOrderLogistic:
		return HasAnyPrivilege(u, PrivilegeLogistic)
	case ServiceOrderArtwork:
		return HasAnyPrivilege(u, PrivilegeDesigner)
	default:
		return false
	}
}

// HasDetailedServiceOrderView reports whether the user gets the detailed
// service-order rendering instead of the simplified one.
func HasDetailedServiceOrderView(u *User) bool {
	if IsTeamLeader(u) {
		return true
	}
	return HasAnyPrivilege(u,
		PrivilegeAdmin,
		PrivilegeCommercial,
		PrivilegeDesigner,
		PrivilegeFinancial,
		PrivilegeLogistic,
	)
}

// AllowedServiceOrderStatuses returns the statuses the user may move an order
// of the given type into. The current status is accepted for callers that
// already hold it, but the matrix does not constrain transitions by origin
// status. Rules:
//   - no edit permission on the type: nothing
//   - ARTWORK carries the approval step; every other type goes straight from
//     in-progress to completed
//   - designers submit artwork for approval and may not complete it
//   - only administrators may cancel
func AllowedServiceOrderStatuses(u *User, t ServiceOrderType, current ServiceOrderStatus) []ServiceOrderStatus {
	if !CanEditServiceOrderOfType(u, t) {
		return nil
	}

	var allowed []ServiceOrderStatus
	if t == ServiceOrderArtwork {
		if HasAnyPrivilege(u, PrivilegeDesigner) {
			allowed = []ServiceOrderStatus{StatusPending, StatusInProgress, StatusWaitingApprove}
		} else {
			allowed = []ServiceOrderStatus{StatusPending, StatusInProgress, StatusWaitingApprove, StatusCompleted}
		}
	} else {
		allowed = []ServiceOrderStatus{StatusPending, StatusInProgress, StatusCompleted}
	}

	if HasAnyPrivilege(u, PrivilegeAdmin) {
		allowed = append(allowed, StatusCancelled)
	}

	return allowed
}

// CanCancelServiceOrder gates the cancel action on order detail screens.
func CanCancelServiceOrder(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin)
}

// CanCompleteArtworkServiceOrder gates the approve-and-complete action on
// artwork orders waiting for approval.
func CanCompleteArtworkServiceOrder(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin)
}
