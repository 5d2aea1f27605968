package user

import "github.com/ankaahq/ankaa-access/internal/authz"

// AccessSummaryDTO is the shape the web client consumes to decide which
// controls to render. It is a projection of the permission matrix for one
// user; the server still enforces every rule on mutation.
type AccessSummaryDTO struct {
	UserID                  int64                      `json:"user_id"`
	IsTeamLeader            bool                       `json:"is_team_leader"`
	ManagedSectorID         *int64                     `json:"managed_sector_id,omitempty"`
	VisibleOrderTypes       []authz.ServiceOrderType   `json:"visible_order_types"`
	EditableOrderTypes      []authz.ServiceOrderType   `json:"editable_order_types"`
	DetailedOrderView       bool                       `json:"detailed_order_view"`
	CanCancelServiceOrders  bool                       `json:"can_cancel_service_orders"`
	InteractiveElements     map[authz.EntityKind]bool  `json:"interactive_elements"`
	CanManagePaintProducing bool                       `json:"can_manage_paint_productions"`
}

// UserDTO is the list/detail projection of a user.
type UserDTO struct {
	ID            int64         `json:"id"`
	Email         string        `json:"email"`
	Name          string        `json:"name"`
	IsActive      bool          `json:"is_active"`
	Sector        *authz.Sector `json:"sector,omitempty"`
	ManagedSector *authz.Sector `json:"managed_sector,omitempty"`
}

func ToDTO(u *User) UserDTO {
	return UserDTO{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		IsActive:      u.IsActive,
		Sector:        u.Sector,
		ManagedSector: u.ManagedSector,
	}
}
